package seed

import "volunteerhub_backend/internal/models"

// Справочники категориальных значений. Только чтение; генераторы
// никогда не изменяют эти списки.

type SkillEntry struct {
	Name     string
	Category string
}

type LanguageEntry struct {
	Code string
	Name string
}

var SkillCatalog = []SkillEntry{
	{"Go", "technical"},
	{"Python", "technical"},
	{"JavaScript", "technical"},
	{"SQL", "technical"},
	{"DevOps", "technical"},
	{"Data Analysis", "analytical"},
	{"Research", "analytical"},
	{"Grant Writing", "analytical"},
	{"Public Speaking", "communication"},
	{"Copywriting", "communication"},
	{"Translation", "communication"},
	{"Social Media", "communication"},
	{"Project Management", "management"},
	{"Event Planning", "management"},
	{"Fundraising", "management"},
	{"Mentoring", "management"},
	{"Graphic Design", "creative"},
	{"Video Editing", "creative"},
	{"Photography", "creative"},
	{"UI/UX Design", "creative"},
}

var LanguageCatalog = []LanguageEntry{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"ar", "Arabic"},
	{"zh", "Chinese"},
	{"hi", "Hindi"},
	{"sw", "Swahili"},
}

var Countries = []string{
	"Kazakhstan", "Germany", "Spain", "Brazil", "Kenya",
	"India", "Canada", "Poland", "Japan", "Mexico",
}

var Cities = []string{
	"Almaty", "Berlin", "Madrid", "Sao Paulo", "Nairobi",
	"Mumbai", "Toronto", "Warsaw", "Tokyo", "Mexico City",
}

var Timezones = []string{
	"Asia/Almaty", "Europe/Berlin", "Europe/Madrid", "America/Sao_Paulo",
	"Africa/Nairobi", "Asia/Kolkata", "America/Toronto", "Europe/Warsaw",
	"Asia/Tokyo", "America/Mexico_City",
}

var FirstNames = []string{
	"Aigerim", "Boris", "Carla", "Diego", "Elena", "Farid", "Grace",
	"Hiro", "Irina", "Jonas", "Kamila", "Liam", "Marta", "Nikolai",
	"Olga", "Pedro", "Quinn", "Rosa", "Samir", "Tomas",
}

var LastNames = []string{
	"Abenova", "Schmidt", "Garcia", "Silva", "Omondi", "Sharma",
	"Tremblay", "Kowalski", "Tanaka", "Hernandez", "Ivanov", "Muller",
	"Lopez", "Santos", "Kimani", "Patel", "Roy", "Nowak", "Sato", "Cruz",
}

var ProjectNames = []string{
	"Community Garden", "Literacy Drive", "Clean Rivers", "Youth Coding Camp",
	"Food Bank Network", "Elder Care Outreach", "Digital Inclusion",
	"Habitat Restoration", "Refugee Support Hub", "Open Health Records",
}

var TaskTitles = []string{
	"Prepare volunteer onboarding pack", "Update partner contact list",
	"Draft monthly newsletter", "Organize supply inventory",
	"Review grant application", "Schedule training session",
	"Translate outreach materials", "Collect event feedback",
	"Publish impact report", "Coordinate transport logistics",
}

var StageNames = []string{
	"Screening", "Phone Interview", "Skills Assessment",
	"Team Interview", "Reference Check",
}

var DocumentTypes = []string{
	"id_card", "background_check", "certificate", "agreement", "medical_clearance",
}

// ReferenceSkills материализует каталог навыков в строки Skill.
func ReferenceSkills() []models.Skill {
	skills := make([]models.Skill, 0, len(SkillCatalog))
	for _, entry := range SkillCatalog {
		skills = append(skills, models.Skill{Name: entry.Name, Category: entry.Category})
	}
	return skills
}

// ReferenceLanguages материализует каталог языков в строки Language.
func ReferenceLanguages() []models.Language {
	languages := make([]models.Language, 0, len(LanguageCatalog))
	for _, entry := range LanguageCatalog {
		languages = append(languages, models.Language{Code: entry.Code, Name: entry.Name})
	}
	return languages
}
