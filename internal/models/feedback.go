package models

type Feedback struct {
	BaseModel
	FromUserID  string       `gorm:"not null;index;check:from_user_id <> to_user_id"`
	ToUserID    string       `gorm:"not null;index"`
	Type        FeedbackType `gorm:"type:varchar(20);not null"`
	Message     string       `gorm:"not null"`
	IsAnonymous bool         `gorm:"not null;default:false"`

	FromUser User `gorm:"foreignKey:FromUserID"`
	ToUser   User `gorm:"foreignKey:ToUserID"`
}
