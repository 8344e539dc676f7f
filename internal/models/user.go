package models

import "time"

type User struct {
	UID       string    `gorm:"primaryKey" json:"uid"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	PhotoURL  string    `gorm:"not null;default:''" json:"photoURL"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
