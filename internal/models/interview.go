package models

import "time"

type Interview struct {
	BaseModel
	ApplicationID   string          `gorm:"not null;index"`
	ScheduledAt     time.Time       `gorm:"not null"`
	DurationMinutes int             `gorm:"not null;check:duration_minutes > 0"`
	Status          InterviewStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Location        string
	Notes           string

	Application Application `gorm:"foreignKey:ApplicationID"`
}
