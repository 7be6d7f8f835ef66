package seed

import (
	"testing"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/config"
	"volunteerhub_backend/internal/database"
	"volunteerhub_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB открывает отдельную in-memory sqlite базу на тест.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.ConnectGorm(dsn)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func generate(t *testing.T, db *gorm.DB, cfg config.SeedConfig) Report {
	t.Helper()

	seeder, err := NewSeeder(db, cfg)
	require.NoError(t, err)
	report, err := seeder.GenerateAll()
	require.NoError(t, err)
	return report
}

func TestGenerateAllExactCounts(t *testing.T) {
	db := newTestDB(t)
	report := generate(t, db, config.SeedConfig{
		UserCount:    50,
		ProjectCount: 8,
		TaskCount:    100,
		RandomSeed:   42,
	})

	assert.Equal(t, 50, report["users"])
	assert.Equal(t, 8, report["projects"])
	assert.Equal(t, 100, report["tasks"])

	var userCount, projectCount, taskCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Project{}).Count(&projectCount)
	db.Model(&models.Task{}).Count(&taskCount)
	assert.EqualValues(t, 50, userCount)
	assert.EqualValues(t, 8, projectCount)
	assert.EqualValues(t, 100, taskCount)

	// каждый task ссылается на один из восьми сгенерированных проектов
	var orphans int64
	db.Model(&models.Task{}).
		Where("project_id NOT IN (?)", db.Model(&models.Project{}).Select("id")).
		Count(&orphans)
	assert.EqualValues(t, 0, orphans)
}

func TestGenerateAllUniqueness(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 40, RandomSeed: 42})

	var users, distinctEmails int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.User{}).Distinct("email").Count(&distinctEmails)
	assert.Equal(t, users, distinctEmails)

	var documents, distinctCodes int64
	db.Model(&models.Document{}).Count(&documents)
	db.Model(&models.Document{}).Distinct("verification_code").Count(&distinctCodes)
	assert.Equal(t, documents, distinctCodes)

	var members []models.TeamMember
	require.NoError(t, db.Find(&members).Error)
	seen := make(map[string]bool)
	for _, m := range members {
		key := m.TeamID + "/" + m.UserID
		assert.False(t, seen[key], "duplicate team member pair %s", key)
		seen[key] = true
	}
}

func TestGenerateAllReferentialIntegrity(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 30, RandomSeed: 42})

	userIDs := db.Model(&models.User{}).Select("id")

	checks := []struct {
		name  string
		model interface{}
		fk    string
	}{
		{"team_members", &models.TeamMember{}, "user_id"},
		{"tasks", &models.Task{}, "created_by"},
		{"evaluations.evaluated", &models.Evaluation{}, "evaluated_user_id"},
		{"evaluations.evaluator", &models.Evaluation{}, "evaluator_id"},
		{"feedback.from", &models.Feedback{}, "from_user_id"},
		{"feedback.to", &models.Feedback{}, "to_user_id"},
		{"documents", &models.Document{}, "user_id"},
		{"notifications", &models.Notification{}, "user_id"},
		{"applications", &models.Application{}, "assigned_to_hr"},
	}
	for _, check := range checks {
		var orphans int64
		db.Model(check.model).
			Where(check.fk+" NOT IN (?)", userIDs).
			Count(&orphans)
		assert.EqualValues(t, 0, orphans, "dangling %s", check.name)
	}

	var stageOrphans int64
	db.Model(&models.ApplicationStage{}).
		Where("application_id NOT IN (?)", db.Model(&models.Application{}).Select("id")).
		Count(&stageOrphans)
	assert.EqualValues(t, 0, stageOrphans)

	var interviewOrphans int64
	db.Model(&models.Interview{}).
		Where("application_id NOT IN (?)", db.Model(&models.Application{}).Select("id")).
		Count(&interviewOrphans)
	assert.EqualValues(t, 0, interviewOrphans)
}

func TestGenerateAllEnumerationClosure(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 30, RandomSeed: 42})

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	for _, u := range users {
		assert.Contains(t, []models.UserRole{
			models.UserRoleAdmin, models.UserRoleHR, models.UserRoleLeadProject,
			models.UserRoleVolunteer, models.UserRoleUnassigned,
		}, u.Role)
		assert.Contains(t, models.AllUserStatuses, u.Status)
	}

	var tasks []models.Task
	require.NoError(t, db.Find(&tasks).Error)
	for _, task := range tasks {
		assert.Contains(t, models.AllTaskStatuses, task.Status)
		assert.Contains(t, models.AllTaskPriorities, task.Priority)
	}

	var stages []models.ApplicationStage
	require.NoError(t, db.Find(&stages).Error)
	for _, stage := range stages {
		assert.Contains(t, models.AllStageStatuses, stage.Status)
	}
}

func TestGenerateAllOrderingInvariants(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 40, RandomSeed: 42})

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	for _, u := range users {
		if u.LastLoginAt != nil {
			assert.False(t, u.LastLoginAt.Before(u.CreatedAt), "last_login before created_at for %s", u.Email)
		}
	}

	var stages []models.ApplicationStage
	require.NoError(t, db.Find(&stages).Error)
	for _, stage := range stages {
		if stage.CompletedAt != nil {
			assert.False(t, stage.CompletedAt.Before(stage.StartedAt))
			assert.NotNil(t, stage.CompletedBy)
		} else {
			assert.Nil(t, stage.CompletedBy)
		}
	}

	var evaluations []models.Evaluation
	require.NoError(t, db.Find(&evaluations).Error)
	for _, e := range evaluations {
		assert.False(t, e.DueDate.Before(e.CreatedAt))
		if e.CompletedAt != nil {
			assert.False(t, e.CompletedAt.Before(e.CreatedAt))
			assert.False(t, e.CompletedAt.After(e.DueDate))
		}
		assert.GreaterOrEqual(t, e.OverallScore, 1)
		assert.LessOrEqual(t, e.OverallScore, 5)
	}

	var tasks []models.Task
	require.NoError(t, db.Find(&tasks).Error)
	for _, task := range tasks {
		assert.GreaterOrEqual(t, task.EstimatedHours, 1)
		if task.ActualHours != nil {
			assert.LessOrEqual(t, *task.ActualHours, task.EstimatedHours+10)
		}
	}

	var applications []models.Application
	require.NoError(t, db.Find(&applications).Error)
	for _, a := range applications {
		if a.CompletedAt != nil {
			assert.True(t, a.Status.IsTerminal(), "completed_at set for non-terminal status %s", a.Status)
		}
	}

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	for _, n := range notifications {
		if n.ReadAt != nil {
			assert.False(t, n.ReadAt.Before(n.CreatedAt), "notification read before it was created")
		}
	}
}

func TestUserStatusPopulationShape(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 50, RandomSeed: 42})

	// первые 90% активны, хвост - только из неактивных статусов
	var active int64
	db.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&active)
	assert.EqualValues(t, 45, active)

	var tail []models.User
	require.NoError(t, db.Where("status <> ?", models.UserStatusActive).Find(&tail).Error)
	require.Len(t, tail, 5)
	for _, u := range tail {
		assert.Contains(t, []models.UserStatus{
			models.UserStatusInactive, models.UserStatusSuspended, models.UserStatusDeleted,
		}, u.Status)
	}
}

func TestApplicationStageConsistency(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 20, ApplicationCount: 40, RandomSeed: 42})

	var applications []models.Application
	require.NoError(t, db.Find(&applications).Error)
	require.Len(t, applications, 40)

	for _, a := range applications {
		var stageCount int64
		db.Model(&models.ApplicationStage{}).Where("application_id = ?", a.ID).Count(&stageCount)
		assert.GreaterOrEqual(t, stageCount, int64(3))
		assert.LessOrEqual(t, stageCount, int64(5))

		// заявка не может находиться на этапе, которого у нее нет
		assert.LessOrEqual(t, int64(a.CurrentStage), stageCount,
			"current_stage %d exceeds %d generated stages", a.CurrentStage, stageCount)
		assert.GreaterOrEqual(t, a.CurrentStage, 1)
	}
}

func TestGenerateAllIdentityWindow(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 20, RandomSeed: 42})

	roleCounts := map[models.UserRole]int64{}
	for _, role := range []models.UserRole{
		models.UserRoleAdmin, models.UserRoleHR, models.UserRoleLeadProject, models.UserRoleVolunteer,
	} {
		var n int64
		db.Model(&models.User{}).Where("role = ?", role).Count(&n)
		roleCounts[role] = n
	}
	assert.EqualValues(t, 2, roleCounts[models.UserRoleAdmin])
	assert.EqualValues(t, 4, roleCounts[models.UserRoleHR])
	assert.EqualValues(t, 9, roleCounts[models.UserRoleLeadProject])
	assert.EqualValues(t, 5, roleCounts[models.UserRoleVolunteer])

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin_1@volunteerhub.org").First(&admin).Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)
}

func TestGenerateAllSelfReferenceExclusion(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 25, EvaluationCount: 100, FeedbackCount: 100, RandomSeed: 42})

	var selfEvaluations int64
	db.Model(&models.Evaluation{}).Where("evaluated_user_id = evaluator_id").Count(&selfEvaluations)
	assert.EqualValues(t, 0, selfEvaluations)

	var selfFeedback int64
	db.Model(&models.Feedback{}).Where("from_user_id = to_user_id").Count(&selfFeedback)
	assert.EqualValues(t, 0, selfFeedback)
}

func TestClearAllThenRegenerate(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 30, RandomSeed: 42})

	require.NoError(t, database.ClearAll(db))

	for _, model := range []interface{}{
		&models.User{}, &models.Profile{}, &models.Skill{}, &models.Language{},
		&models.UserSkill{}, &models.UserLanguage{}, &models.Project{}, &models.Team{},
		&models.TeamMember{}, &models.TeamSkillRequirement{}, &models.Task{},
		&models.Application{}, &models.ApplicationStage{}, &models.Interview{},
		&models.Evaluation{}, &models.Feedback{}, &models.Document{}, &models.Notification{},
	} {
		var n int64
		db.Model(model).Count(&n)
		assert.EqualValues(t, 0, n, "%T not empty after wipe", model)
	}

	// повторная генерация на чистой базе проходит без конфликтов уникальности
	generate(t, db, config.SeedConfig{UserCount: 30, RandomSeed: 43})
}

func TestGenerateAllBelowReservedWindowRollsBack(t *testing.T) {
	db := newTestDB(t)

	seeder, err := NewSeeder(db, config.SeedConfig{UserCount: 5, RandomSeed: 42})
	require.NoError(t, err)

	_, err = seeder.GenerateAll()
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeDependencyMissing, appErrors.CodeOf(err))

	// вся партия откатывается: справочники тоже не остаются
	var skills, users int64
	db.Model(&models.Skill{}).Count(&skills)
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 0, skills)
	assert.EqualValues(t, 0, users)
}

func TestGenerateCoreSubgraphOnly(t *testing.T) {
	db := newTestDB(t)

	seeder, err := NewSeeder(db, config.SeedConfig{UserCount: 20, RandomSeed: 42})
	require.NoError(t, err)
	report, err := seeder.GenerateCore()
	require.NoError(t, err)

	assert.Equal(t, 20, report["users"])
	assert.Equal(t, 20, report["profiles"])
	assert.NotZero(t, report["skills"])
	assert.NotZero(t, report["user_skills"])

	var projects, applications, notifications int64
	db.Model(&models.Project{}).Count(&projects)
	db.Model(&models.Application{}).Count(&applications)
	db.Model(&models.Notification{}).Count(&notifications)
	assert.EqualValues(t, 0, projects)
	assert.EqualValues(t, 0, applications)
	assert.EqualValues(t, 0, notifications)
}

func TestTopologicalOrderParentsFirst(t *testing.T) {
	seeder, err := NewSeeder(nil, config.SeedConfig{})
	require.NoError(t, err)

	ordered, err := topologicalOrder(seeder.graph())
	require.NoError(t, err)
	require.Len(t, ordered, len(seeder.graph()))

	position := make(map[string]int)
	for i, g := range ordered {
		position[g.kind] = i
	}
	for _, g := range ordered {
		for _, parent := range g.parents {
			assert.Less(t, position[parent], position[g.kind],
				"parent %s must run before %s", parent, g.kind)
		}
	}
}

func TestTopologicalOrderRejectsCycle(t *testing.T) {
	cyclic := []generator{
		{kind: "a", parents: []string{"b"}},
		{kind: "b", parents: []string{"a"}},
	}
	_, err := topologicalOrder(cyclic)
	require.Error(t, err)

	unknown := []generator{
		{kind: "a", parents: []string{"missing"}},
	}
	_, err = topologicalOrder(unknown)
	require.Error(t, err)
}

func TestTeamInvariants(t *testing.T) {
	db := newTestDB(t)
	generate(t, db, config.SeedConfig{UserCount: 30, ProjectCount: 6, RandomSeed: 42})

	var teams []models.Team
	require.NoError(t, db.Find(&teams).Error)
	require.Len(t, teams, 6)

	for _, team := range teams {
		assert.LessOrEqual(t, team.CurrentSize, team.MaxSize)
		assert.GreaterOrEqual(t, team.CurrentSize, 0)

		var memberCount int64
		db.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&memberCount)
		assert.EqualValues(t, team.CurrentSize, memberCount)

		var leadCount int64
		db.Model(&models.TeamMember{}).
			Where("team_id = ? AND role = ?", team.ID, models.TeamRoleLead).
			Count(&leadCount)
		assert.EqualValues(t, 1, leadCount)
	}
}
