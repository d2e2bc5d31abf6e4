package models

import "time"

// Order statuses the dashboard counts. Other values are stored as given.
const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
)

// Order is a sale of some produce to a buyer.
type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"-" gorm:"index;type:varchar(36)"`
	ProduceName string    `json:"produce_name" gorm:"type:varchar(100)"`
	Quantity    float64   `json:"quantity"`
	Buyer       string    `json:"buyer" gorm:"type:varchar(255)"`
	Status      string    `json:"status" gorm:"type:varchar(32);index"`
	CreatedAt   time.Time `json:"created_at"`
}
