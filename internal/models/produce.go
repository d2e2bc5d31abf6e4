package models

import "time"

// Produce is one inventory entry recorded by a farmer. Entries are never
// edited after creation.
type Produce struct {
	ID       uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   string    `json:"-" gorm:"index;type:varchar(36)"`
	Name     string    `json:"name" gorm:"type:varchar(100)"`
	Quantity float64   `json:"quantity"` // kilograms
	Location string    `json:"location" gorm:"type:varchar(255)"`
	AddedAt  time.Time `json:"added_at"`
	Emoji    string    `json:"emoji" gorm:"-"`
}
