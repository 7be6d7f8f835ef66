package models

import "time"

type Document struct {
	BaseModel
	UserID           string         `gorm:"not null;index"`
	Name             string         `gorm:"not null"`
	Type             string         `gorm:"not null"`
	VerificationCode string         `gorm:"uniqueIndex;not null"`
	Status           DocumentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt        *time.Time

	User User `gorm:"foreignKey:UserID"`
}
