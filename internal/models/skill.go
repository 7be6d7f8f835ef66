package models

type Skill struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Category string `gorm:"not null"`
}

type UserSkill struct {
	BaseModel
	UserID      string           `gorm:"uniqueIndex:idx_user_skill;not null"`
	SkillID     string           `gorm:"uniqueIndex:idx_user_skill;not null"`
	Proficiency SkillProficiency `gorm:"type:varchar(20);not null"`

	User  User  `gorm:"foreignKey:UserID"`
	Skill Skill `gorm:"foreignKey:SkillID"`
}
