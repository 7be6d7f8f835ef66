package seed

import (
	"fmt"
	"strings"
	"time"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"

	"gorm.io/gorm"
)

func (s *Seeder) generateApplications(tx *gorm.DB, st *state) error {
	hrStaff := usersWithRole(st.Users, models.UserRoleHR)
	if len(hrStaff) == 0 {
		return appErrors.DependencyMissing("applications", "hr-eligible users", 1, 0)
	}

	now := time.Now()
	applications := make([]models.Application, 0, s.cfg.ApplicationCount)
	stageCounts := make([]int, 0, s.cfg.ApplicationCount)
	for i := 0; i < s.cfg.ApplicationCount; i++ {
		hr, err := Choice(s.sampler, hrStaff)
		if err != nil {
			return err
		}
		firstName, err := Choice(s.sampler, FirstNames)
		if err != nil {
			return err
		}
		lastName, err := Choice(s.sampler, LastNames)
		if err != nil {
			return err
		}
		appType, err := Choice(s.sampler, models.AllApplicationTypes)
		if err != nil {
			return err
		}
		status, err := Choice(s.sampler, models.AllApplicationStatuses)
		if err != nil {
			return err
		}
		stageCount, err := s.sampler.IntRange(3, 5)
		if err != nil {
			return err
		}
		currentStage, err := s.sampler.IntRange(1, stageCount)
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(-1, 0, 0), now.AddDate(0, -1, 0))
		if err != nil {
			return err
		}

		application := models.Application{
			CandidateName: firstName + " " + lastName,
			CandidateEmail: fmt.Sprintf("%s.%s%d@candidates.%s",
				strings.ToLower(firstName), strings.ToLower(lastName), i+1, s.cfg.EmailDomain),
			Type:         appType,
			Status:       status,
			CurrentStage: currentStage,
			AssignedToHR: hr.ID,
		}
		application.CreatedAt = createdAt

		// completed_at заполняется только для конечных статусов
		if status.IsTerminal() {
			completedAt, err := s.sampler.DateAfter(createdAt, now)
			if err != nil {
				return err
			}
			application.CompletedAt = &completedAt
		}

		applications = append(applications, application)
		stageCounts = append(stageCounts, stageCount)
	}

	if err := tx.CreateInBatches(applications, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert applications")
	}
	st.Applications = applications
	st.StageCounts = stageCounts
	return nil
}

// generateApplicationStages выдает каждой заявке от 3 до 5 упорядоченных
// этапов; completed_at этапа всегда позже его started_at, а completed_by
// заполняется только у завершенных этапов.
func (s *Seeder) generateApplicationStages(tx *gorm.DB, st *state) error {
	if len(st.Applications) == 0 {
		return appErrors.DependencyMissing("application_stages", "applications", 1, 0)
	}
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("application_stages", "users", 1, 0)
	}

	now := time.Now()
	stages := make([]models.ApplicationStage, 0, len(st.Applications)*4)
	for i, application := range st.Applications {
		// число этапов запланировано при генерации заявки
		stageCount := st.StageCounts[i]

		previousStart := application.CreatedAt
		for order := 1; order <= stageCount; order++ {
			startedAt, err := s.sampler.DateAfter(previousStart, now)
			if err != nil {
				return err
			}
			previousStart = startedAt

			status, err := Choice(s.sampler, models.AllStageStatuses)
			if err != nil {
				return err
			}

			stage := models.ApplicationStage{
				ApplicationID: application.ID,
				StageOrder:    order,
				Name:          StageNames[order-1],
				Status:        status,
				StartedAt:     startedAt,
			}

			if status == models.StageStatusCompleted {
				completedAt, err := s.sampler.DateAfter(startedAt, now)
				if err != nil {
					return err
				}
				completer, err := Choice(s.sampler, st.Users)
				if err != nil {
					return err
				}
				stage.CompletedAt = &completedAt
				stage.CompletedBy = &completer.ID
			}

			stages = append(stages, stage)
		}
	}

	if err := tx.CreateInBatches(stages, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert application stages")
	}
	st.Counts["application_stages"] = len(stages)
	return nil
}

func (s *Seeder) generateInterviews(tx *gorm.DB, st *state) error {
	if len(st.Applications) == 0 {
		return appErrors.DependencyMissing("interviews", "applications", 1, 0)
	}

	now := time.Now()
	interviews := make([]models.Interview, 0, s.cfg.InterviewCount)
	for i := 0; i < s.cfg.InterviewCount; i++ {
		application, err := Choice(s.sampler, st.Applications)
		if err != nil {
			return err
		}
		scheduledAt, err := s.sampler.DateBetween(application.CreatedAt, now.AddDate(0, 1, 0))
		if err != nil {
			return err
		}
		duration, err := Choice(s.sampler, []int{30, 45, 60, 90})
		if err != nil {
			return err
		}
		status, err := Choice(s.sampler, models.AllInterviewStatuses)
		if err != nil {
			return err
		}
		city, err := Choice(s.sampler, Cities)
		if err != nil {
			return err
		}

		location := "Remote"
		if s.sampler.Bool(0.4) {
			location = city + " office"
		}

		interviews = append(interviews, models.Interview{
			ApplicationID:   application.ID,
			ScheduledAt:     scheduledAt,
			DurationMinutes: duration,
			Status:          status,
			Location:        location,
		})
	}

	if err := tx.CreateInBatches(interviews, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert interviews")
	}
	st.Counts["interviews"] = len(interviews)
	return nil
}
