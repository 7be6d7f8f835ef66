package seed

import (
	"encoding/json"
	"time"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// generateEvaluations выбирает оценщика и оцениваемого как два разных
// пользователя; completed_at лежит внутри [created_at, due_date].
func (s *Seeder) generateEvaluations(tx *gorm.DB, st *state) error {
	if len(st.Users) < 2 {
		return appErrors.DependencyMissing("evaluations", "users", 2, len(st.Users))
	}

	now := time.Now()
	evaluations := make([]models.Evaluation, 0, s.cfg.EvaluationCount)
	for i := 0; i < s.cfg.EvaluationCount; i++ {
		evaluator, evaluated, err := DistinctPair(s.sampler, st.Users)
		if err != nil {
			return err
		}
		score, err := s.sampler.IntRange(1, 5)
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(0, -6, 0), now.AddDate(0, 0, -7))
		if err != nil {
			return err
		}
		dueDate, err := s.sampler.DateAfter(createdAt, createdAt.AddDate(0, 1, 0))
		if err != nil {
			return err
		}

		evaluation := models.Evaluation{
			EvaluatedUserID: evaluated.ID,
			EvaluatorID:     evaluator.ID,
			Status:          models.EvaluationStatusPending,
			OverallScore:    score,
			DueDate:         dueDate,
		}
		evaluation.CreatedAt = createdAt

		if s.sampler.Bool(0.5) {
			completedAt, err := s.sampler.DateBetween(createdAt, dueDate)
			if err != nil {
				return err
			}
			evaluation.CompletedAt = &completedAt
			evaluation.Status = models.EvaluationStatusCompleted
		} else if s.sampler.Bool(0.5) {
			evaluation.Status = models.EvaluationStatusInProgress
		}

		evaluations = append(evaluations, evaluation)
	}

	if err := tx.CreateInBatches(evaluations, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert evaluations")
	}
	st.Counts["evaluations"] = len(evaluations)
	return nil
}

func (s *Seeder) generateFeedback(tx *gorm.DB, st *state) error {
	if len(st.Users) < 2 {
		return appErrors.DependencyMissing("feedback", "users", 2, len(st.Users))
	}

	feedback := make([]models.Feedback, 0, s.cfg.FeedbackCount)
	for i := 0; i < s.cfg.FeedbackCount; i++ {
		fromUser, toUser, err := DistinctPair(s.sampler, st.Users)
		if err != nil {
			return err
		}
		feedbackType, err := Choice(s.sampler, models.AllFeedbackTypes)
		if err != nil {
			return err
		}

		feedback = append(feedback, models.Feedback{
			FromUserID:  fromUser.ID,
			ToUserID:    toUser.ID,
			Type:        feedbackType,
			Message:     "Feedback on recent collaboration",
			IsAnonymous: s.sampler.Bool(0.3),
		})
	}

	if err := tx.CreateInBatches(feedback, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert feedback")
	}
	st.Counts["feedback"] = len(feedback)
	return nil
}

func (s *Seeder) generateDocuments(tx *gorm.DB, st *state) error {
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("documents", "users", 1, 0)
	}

	now := time.Now()
	documents := make([]models.Document, 0, s.cfg.DocumentCount)
	for i := 0; i < s.cfg.DocumentCount; i++ {
		user, err := Choice(s.sampler, st.Users)
		if err != nil {
			return err
		}
		docType, err := Choice(s.sampler, DocumentTypes)
		if err != nil {
			return err
		}
		status, err := Choice(s.sampler, models.AllDocumentStatuses)
		if err != nil {
			return err
		}
		code, err := s.allocator.VerificationCode()
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(-1, 0, 0), now)
		if err != nil {
			return err
		}

		document := models.Document{
			UserID:           user.ID,
			Name:             docType + ".pdf",
			Type:             docType,
			VerificationCode: code,
			Status:           status,
		}
		document.CreatedAt = createdAt

		if s.sampler.Bool(0.5) {
			expiresAt, err := s.sampler.DateAfter(createdAt, createdAt.AddDate(2, 0, 0))
			if err != nil {
				return err
			}
			document.ExpiresAt = &expiresAt
		}

		documents = append(documents, document)
	}

	if err := tx.CreateInBatches(documents, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert documents")
	}
	st.Counts["documents"] = len(documents)
	return nil
}

func (s *Seeder) generateNotifications(tx *gorm.DB, st *state) error {
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("notifications", "users", 1, 0)
	}

	now := time.Now()
	notifications := make([]models.Notification, 0, s.cfg.NotificationCount)
	for i := 0; i < s.cfg.NotificationCount; i++ {
		user, err := Choice(s.sampler, st.Users)
		if err != nil {
			return err
		}
		notificationType, err := Choice(s.sampler, models.AllNotificationTypes)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]string{"source": string(notificationType)})
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(0, -1, 0), now)
		if err != nil {
			return err
		}

		notification := models.Notification{
			UserID:  user.ID,
			Type:    notificationType,
			Title:   "Update: " + string(notificationType),
			Message: "You have a new update in your workspace",
			Data:    datatypes.JSON(payload),
		}
		notification.CreatedAt = createdAt

		// read_at не раньше created_at
		if s.sampler.Bool(0.5) {
			readAt, err := s.sampler.DateAfter(createdAt, now)
			if err != nil {
				return err
			}
			notification.IsRead = true
			notification.ReadAt = &readAt
		}

		notifications = append(notifications, notification)
	}

	if err := tx.CreateInBatches(notifications, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert notifications")
	}
	st.Counts["notifications"] = len(notifications)
	return nil
}
