package models

import "time"

type Evaluation struct {
	BaseModel
	EvaluatedUserID string           `gorm:"not null;index"`
	EvaluatorID     string           `gorm:"not null;index;check:evaluator_id <> evaluated_user_id"`
	Status          EvaluationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	OverallScore    int              `gorm:"not null;check:overall_score >= 1 AND overall_score <= 5"`
	Comments        string
	DueDate         time.Time `gorm:"not null"`
	CompletedAt     *time.Time

	EvaluatedUser User `gorm:"foreignKey:EvaluatedUserID"`
	Evaluator     User `gorm:"foreignKey:EvaluatorID"`
}
