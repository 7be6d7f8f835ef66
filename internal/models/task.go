package models

import "time"

type Task struct {
	BaseModel
	ProjectID      string `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	Description    string
	AssignedTo     *string      `gorm:"index"`
	CreatedBy      string       `gorm:"not null;index"`
	Status         TaskStatus   `gorm:"type:varchar(20);not null;default:'backlog'"`
	Priority       TaskPriority `gorm:"type:varchar(20);not null;default:'medium'"`
	EstimatedHours int          `gorm:"not null;check:estimated_hours >= 1"`
	ActualHours    *int         `gorm:"check:actual_hours <= estimated_hours + 10"`
	DueDate        *time.Time

	// Relations
	Project  Project `gorm:"foreignKey:ProjectID"`
	Assignee *User   `gorm:"foreignKey:AssignedTo"`
	Creator  User    `gorm:"foreignKey:CreatedBy"`
}
