package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	FirstName    string     `gorm:"not null"`
	LastName     string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID"`
	Skills        []UserSkill    `gorm:"foreignKey:UserID"`
	Languages     []UserLanguage `gorm:"foreignKey:UserID"`
	Notifications []Notification `gorm:"foreignKey:UserID"`
}
