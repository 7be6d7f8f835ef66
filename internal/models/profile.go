package models

import "time"

type Profile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;not null"`
	Country      string `gorm:"not null"`
	City         string `gorm:"not null"`
	Timezone     string `gorm:"not null"`
	HoursPerWeek int    `gorm:"not null;check:hours_per_week IN (10, 20)"`
	Bio          string
	Phone        string
	BirthDate    *time.Time
}
