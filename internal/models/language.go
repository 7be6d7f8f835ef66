package models

type Language struct {
	BaseModel
	Code string `gorm:"uniqueIndex;not null;type:varchar(5)"`
	Name string `gorm:"uniqueIndex;not null"`
}

type UserLanguage struct {
	BaseModel
	UserID      string              `gorm:"uniqueIndex:idx_user_language;not null"`
	LanguageID  string              `gorm:"uniqueIndex:idx_user_language;not null"`
	Proficiency LanguageProficiency `gorm:"type:varchar(20);not null"`

	User     User     `gorm:"foreignKey:UserID"`
	Language Language `gorm:"foreignKey:LanguageID"`
}
