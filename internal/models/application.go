package models

import "time"

type Application struct {
	BaseModel
	CandidateName  string            `gorm:"not null"`
	CandidateEmail string            `gorm:"not null;index"`
	Type           ApplicationType   `gorm:"type:varchar(20);not null"`
	Status         ApplicationStatus `gorm:"type:varchar(30);not null;default:'submitted'"`
	CurrentStage   int               `gorm:"not null;check:current_stage >= 1"`
	AssignedToHR   string            `gorm:"column:assigned_to_hr;not null;index"`
	Motivation     string
	CompletedAt    *time.Time

	// Relations
	HR         User               `gorm:"foreignKey:AssignedToHR"`
	Stages     []ApplicationStage `gorm:"foreignKey:ApplicationID"`
	Interviews []Interview        `gorm:"foreignKey:ApplicationID"`
}

type ApplicationStage struct {
	BaseModel
	ApplicationID string      `gorm:"uniqueIndex:idx_application_stage;not null"`
	StageOrder    int         `gorm:"uniqueIndex:idx_application_stage;not null;check:stage_order >= 1"`
	Name          string      `gorm:"not null"`
	Status        StageStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	StartedAt     time.Time   `gorm:"not null"`
	CompletedAt   *time.Time
	CompletedBy   *string

	Application Application `gorm:"foreignKey:ApplicationID"`
	Completer   *User       `gorm:"foreignKey:CompletedBy"`
}
