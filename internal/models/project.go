package models

import "time"

type Project struct {
	BaseModel
	Name            string `gorm:"not null"`
	Description     string
	LeadID          string        `gorm:"not null;index"`
	Status          ProjectStatus `gorm:"type:varchar(20);not null"`
	MaxTeamSize     int           `gorm:"not null;check:max_team_size >= current_team_size"`
	CurrentTeamSize int           `gorm:"not null;default:0;check:current_team_size >= 0"`
	Deadline        *time.Time

	// Relations
	Lead  User   `gorm:"foreignKey:LeadID"`
	Teams []Team `gorm:"foreignKey:ProjectID"`
	Tasks []Task `gorm:"foreignKey:ProjectID"`
}
