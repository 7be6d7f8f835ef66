package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index"`
	Type    NotificationType `gorm:"type:varchar(30);not null"`
	Title   string           `gorm:"not null"`
	Message string
	Data    datatypes.JSON // {"project_id": "...", "task_id": "..."}
	IsRead  bool           `gorm:"not null;default:false"`
	ReadAt  *time.Time

	User User `gorm:"foreignKey:UserID"`
}
