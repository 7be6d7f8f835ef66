package seed

import (
	"time"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"

	"gorm.io/gorm"
)

// Доля пользователей в начале списка, получающих статус active.
// Хвост получает случайный статус из остального домена.
const activeUserShare = 0.9

func (s *Seeder) generateSkills(tx *gorm.DB, st *state) error {
	skills := ReferenceSkills()
	if err := tx.CreateInBatches(skills, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert skill catalog")
	}
	st.Skills = skills
	return nil
}

func (s *Seeder) generateLanguages(tx *gorm.DB, st *state) error {
	languages := ReferenceLanguages()
	if err := tx.CreateInBatches(languages, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert language catalog")
	}
	st.Languages = languages
	return nil
}

func (s *Seeder) generateUsers(tx *gorm.DB, st *state) error {
	identities, err := s.allocator.PlanUsers(s.cfg.UserCount)
	if err != nil {
		return err
	}

	now := time.Now()
	activeCutoff := int(float64(len(identities)) * activeUserShare)

	users := make([]models.User, 0, len(identities))
	for i, identity := range identities {
		createdAt, err := s.sampler.DateBetween(now.AddDate(-2, 0, 0), now.AddDate(0, 0, -1))
		if err != nil {
			return err
		}

		status := models.UserStatusActive
		if i >= activeCutoff {
			status, err = Choice(s.sampler, []models.UserStatus{
				models.UserStatusInactive, models.UserStatusSuspended, models.UserStatusDeleted,
			})
			if err != nil {
				return err
			}
		}

		user := models.User{
			Email:        identity.Email,
			PasswordHash: s.passwordHash,
			FirstName:    identity.FirstName,
			LastName:     identity.LastName,
			Role:         identity.Role,
			Status:       status,
		}
		user.CreatedAt = createdAt

		// last_login не раньше created_at
		if s.sampler.Bool(0.7) {
			lastLogin, err := s.sampler.DateAfter(createdAt, now)
			if err != nil {
				return err
			}
			user.LastLoginAt = &lastLogin
		}

		users = append(users, user)
	}

	if err := tx.CreateInBatches(users, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert users")
	}
	st.Users = users
	return nil
}

func (s *Seeder) generateProfiles(tx *gorm.DB, st *state) error {
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("profiles", "users", 1, 0)
	}

	now := time.Now()
	profiles := make([]models.Profile, 0, len(st.Users))
	for _, user := range st.Users {
		country, err := Choice(s.sampler, Countries)
		if err != nil {
			return err
		}
		city, err := Choice(s.sampler, Cities)
		if err != nil {
			return err
		}
		timezone, err := Choice(s.sampler, Timezones)
		if err != nil {
			return err
		}
		hours, err := Choice(s.sampler, []int{10, 20})
		if err != nil {
			return err
		}

		profile := models.Profile{
			UserID:       user.ID,
			Country:      country,
			City:         city,
			Timezone:     timezone,
			HoursPerWeek: hours,
		}

		if s.sampler.Bool(0.6) {
			birthDate, err := s.sampler.DateBetween(now.AddDate(-60, 0, 0), now.AddDate(-18, 0, 0))
			if err != nil {
				return err
			}
			profile.BirthDate = &birthDate
		}

		profiles = append(profiles, profile)
	}

	if err := tx.CreateInBatches(profiles, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert profiles")
	}
	st.Counts["profiles"] = len(profiles)
	return nil
}

func (s *Seeder) generateUserSkills(tx *gorm.DB, st *state) error {
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("user_skills", "users", 1, 0)
	}
	if len(st.Skills) == 0 {
		return appErrors.DependencyMissing("user_skills", "skills", 1, 0)
	}

	userSkills := make([]models.UserSkill, 0, len(st.Users)*3)
	for _, user := range st.Users {
		k, err := s.sampler.IntRange(1, min(5, len(st.Skills)))
		if err != nil {
			return err
		}
		skills, err := SampleDistinct(s.sampler, st.Skills, k)
		if err != nil {
			return err
		}

		for _, skill := range skills {
			proficiency, err := Choice(s.sampler, models.AllSkillProficiencies)
			if err != nil {
				return err
			}
			userSkills = append(userSkills, models.UserSkill{
				UserID:      user.ID,
				SkillID:     skill.ID,
				Proficiency: proficiency,
			})
		}
	}

	if err := tx.CreateInBatches(userSkills, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert user skills")
	}
	st.Counts["user_skills"] = len(userSkills)
	return nil
}

func (s *Seeder) generateUserLanguages(tx *gorm.DB, st *state) error {
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("user_languages", "users", 1, 0)
	}
	if len(st.Languages) == 0 {
		return appErrors.DependencyMissing("user_languages", "languages", 1, 0)
	}

	userLanguages := make([]models.UserLanguage, 0, len(st.Users)*2)
	for _, user := range st.Users {
		k, err := s.sampler.IntRange(1, min(3, len(st.Languages)))
		if err != nil {
			return err
		}
		languages, err := SampleDistinct(s.sampler, st.Languages, k)
		if err != nil {
			return err
		}

		for _, language := range languages {
			proficiency, err := Choice(s.sampler, models.AllLanguageLevels)
			if err != nil {
				return err
			}
			userLanguages = append(userLanguages, models.UserLanguage{
				UserID:      user.ID,
				LanguageID:  language.ID,
				Proficiency: proficiency,
			})
		}
	}

	if err := tx.CreateInBatches(userLanguages, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert user languages")
	}
	st.Counts["user_languages"] = len(userLanguages)
	return nil
}
