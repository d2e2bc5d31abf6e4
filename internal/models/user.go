package models

import "time"

// User is a farmer account. XP and Level only change together through the
// progression rules in the dashboard package.
type User struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name             string    `json:"name" gorm:"type:varchar(100)"`
	Email            string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash     string    `json:"-" gorm:"type:varchar(255)"`
	Location         string    `json:"location" gorm:"type:varchar(255)"`
	XP               int       `json:"xp" gorm:"not null;default:0"`
	Level            int       `json:"level" gorm:"not null;default:1"`
	Bio              string    `json:"bio,omitempty" gorm:"type:text"`
	Phone            string    `json:"phone,omitempty" gorm:"type:varchar(32)"`
	FarmSize         int       `json:"farm_size,omitempty"`
	PreferredProduce []string  `json:"preferred_produce" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
