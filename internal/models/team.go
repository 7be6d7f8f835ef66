package models

import "time"

type Team struct {
	BaseModel
	ProjectID   string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	LeadID      string `gorm:"not null;index"`
	MaxSize     int    `gorm:"not null;check:max_size >= current_size"`
	CurrentSize int    `gorm:"not null;default:0;check:current_size >= 0"`

	// Relations
	Project           Project                `gorm:"foreignKey:ProjectID"`
	Lead              User                   `gorm:"foreignKey:LeadID"`
	Members           []TeamMember           `gorm:"foreignKey:TeamID"`
	SkillRequirements []TeamSkillRequirement `gorm:"foreignKey:TeamID"`
}

type TeamMember struct {
	BaseModel
	TeamID   string         `gorm:"uniqueIndex:idx_team_user;not null"`
	UserID   string         `gorm:"uniqueIndex:idx_team_user;not null"`
	Role     TeamMemberRole `gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time      `gorm:"not null"`

	Team Team `gorm:"foreignKey:TeamID"`
	User User `gorm:"foreignKey:UserID"`
}

type TeamSkillRequirement struct {
	BaseModel
	TeamID   string              `gorm:"uniqueIndex:idx_team_skill;not null"`
	SkillID  string              `gorm:"uniqueIndex:idx_team_skill;not null"`
	Required bool                `gorm:"not null;default:false"`
	Priority RequirementPriority `gorm:"type:varchar(20);not null"`

	Team  Team  `gorm:"foreignKey:TeamID"`
	Skill Skill `gorm:"foreignKey:SkillID"`
}
