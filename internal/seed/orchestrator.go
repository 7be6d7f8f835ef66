package seed

import (
	"fmt"
	"time"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/config"
	"volunteerhub_backend/internal/database"
	"volunteerhub_backend/internal/logger"
	"volunteerhub_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const insertBatchSize = 100

// Значения счетчиков по умолчанию
const (
	DefaultUserCount         = 50
	DefaultProjectCount      = 10
	DefaultTaskCount         = 100
	DefaultApplicationCount  = 20
	DefaultEvaluationCount   = 30
	DefaultFeedbackCount     = 40
	DefaultInterviewCount    = 15
	DefaultDocumentCount     = 25
	DefaultNotificationCount = 60
)

// Report - итог прогона: сущность -> количество созданных строк.
type Report map[string]int

// state - наборы ключей, материализованные предыдущими генераторами.
// Дочерний генератор читает только то, что родители уже записали.
type state struct {
	Skills       []models.Skill
	Languages    []models.Language
	Users        []models.User
	Projects     []models.Project
	Teams        []models.Team
	Applications []models.Application

	// StageCounts[i] - запланированное число этапов для Applications[i];
	// current_stage заявки никогда не превышает это число.
	StageCounts []int

	Counts Report
}

type generatorFunc func(tx *gorm.DB, st *state) error

// generator - узел DAG: имя сущности, ее объявленные родители и функция
// генерации. Новая сущность подключается объявлением родителей, без
// правки последовательности вызовов.
type generator struct {
	kind    string
	parents []string
	run     generatorFunc
}

// Seeder - оркестратор генерации синтетического набора данных.
type Seeder struct {
	db           *gorm.DB
	cfg          config.SeedConfig
	sampler      *Sampler
	allocator    *IdentityAllocator
	passwordHash string
}

// NewSeeder применяет значения по умолчанию и готовит общие зависимости
// (один bcrypt-хэш на прогон - все посеянные учетные записи делят
// известный тестовый пароль).
func NewSeeder(db *gorm.DB, cfg config.SeedConfig) (*Seeder, error) {
	applyDefaults(&cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.CodeInvalidSeedConfig, "failed to hash seed password")
	}

	sampler := NewSampler(cfg.RandomSeed)
	return &Seeder{
		db:           db,
		cfg:          cfg,
		sampler:      sampler,
		allocator:    NewIdentityAllocator(sampler, cfg.EmailDomain),
		passwordHash: string(hash),
	}, nil
}

func applyDefaults(cfg *config.SeedConfig) {
	if cfg.UserCount == 0 {
		cfg.UserCount = DefaultUserCount
	}
	if cfg.ProjectCount == 0 {
		cfg.ProjectCount = DefaultProjectCount
	}
	if cfg.TaskCount == 0 {
		cfg.TaskCount = DefaultTaskCount
	}
	if cfg.ApplicationCount == 0 {
		cfg.ApplicationCount = DefaultApplicationCount
	}
	if cfg.EvaluationCount == 0 {
		cfg.EvaluationCount = DefaultEvaluationCount
	}
	if cfg.FeedbackCount == 0 {
		cfg.FeedbackCount = DefaultFeedbackCount
	}
	if cfg.InterviewCount == 0 {
		cfg.InterviewCount = DefaultInterviewCount
	}
	if cfg.DocumentCount == 0 {
		cfg.DocumentCount = DefaultDocumentCount
	}
	if cfg.NotificationCount == 0 {
		cfg.NotificationCount = DefaultNotificationCount
	}
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = "volunteerhub.org"
	}
	if cfg.Password == "" {
		cfg.Password = "password123"
	}
}

// graph объявляет полный DAG сущностей.
func (s *Seeder) graph() []generator {
	return []generator{
		{kind: "skills", run: s.generateSkills},
		{kind: "languages", run: s.generateLanguages},
		{kind: "users", run: s.generateUsers},
		{kind: "profiles", parents: []string{"users"}, run: s.generateProfiles},
		{kind: "user_skills", parents: []string{"users", "skills"}, run: s.generateUserSkills},
		{kind: "user_languages", parents: []string{"users", "languages"}, run: s.generateUserLanguages},
		{kind: "projects", parents: []string{"users"}, run: s.generateProjects},
		{kind: "teams", parents: []string{"projects", "users"}, run: s.generateTeams},
		{kind: "team_members", parents: []string{"teams", "users"}, run: s.generateTeamMembers},
		{kind: "team_skill_requirements", parents: []string{"teams", "skills"}, run: s.generateTeamSkillRequirements},
		{kind: "tasks", parents: []string{"projects", "users"}, run: s.generateTasks},
		{kind: "applications", parents: []string{"users"}, run: s.generateApplications},
		{kind: "application_stages", parents: []string{"applications", "users"}, run: s.generateApplicationStages},
		{kind: "interviews", parents: []string{"applications"}, run: s.generateInterviews},
		{kind: "evaluations", parents: []string{"users"}, run: s.generateEvaluations},
		{kind: "feedback", parents: []string{"users"}, run: s.generateFeedback},
		{kind: "documents", parents: []string{"users"}, run: s.generateDocuments},
		{kind: "notifications", parents: []string{"users"}, run: s.generateNotifications},
	}
}

// coreKinds - подграф для облегченной генерации: справочники,
// пользователи, профили и их навыки/языки.
var coreKinds = map[string]bool{
	"skills":         true,
	"languages":      true,
	"users":          true,
	"profiles":       true,
	"user_skills":    true,
	"user_languages": true,
}

// GenerateAll выполняет полный прогон в одной транзакции: при любой
// ошибке все записанные строки откатываются.
func (s *Seeder) GenerateAll() (Report, error) {
	return s.run(s.graph())
}

// GenerateCore генерирует только базовый подграф.
func (s *Seeder) GenerateCore() (Report, error) {
	var subset []generator
	for _, g := range s.graph() {
		if coreKinds[g.kind] {
			subset = append(subset, g)
		}
	}
	return s.run(subset)
}

func (s *Seeder) run(generators []generator) (Report, error) {
	ordered, err := topologicalOrder(generators)
	if err != nil {
		return nil, err
	}

	if s.cfg.WipeFirst {
		if err := database.ClearAll(s.db); err != nil {
			return nil, err
		}
	}

	st := &state{Counts: make(Report)}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, g := range ordered {
			start := time.Now()
			runErr := g.run(tx, st)
			recordBuiltinCounts(st)
			logger.GeneratorLog(g.kind, st.Counts[g.kind], time.Since(start), runErr)
			if runErr != nil {
				// ошибка генератора уже несет имя сущности и причину;
				// оборачивание скрыло бы ее код от вызывающего
				logger.Error("generation aborted", "entity", g.kind, "error", runErr)
				return runErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return st.Counts, nil
}

// recordBuiltinCounts переносит размеры материализованных наборов
// ключей в отчет.
func recordBuiltinCounts(st *state) {
	st.Counts["skills"] = len(st.Skills)
	st.Counts["languages"] = len(st.Languages)
	st.Counts["users"] = len(st.Users)
	st.Counts["projects"] = len(st.Projects)
	st.Counts["teams"] = len(st.Teams)
	st.Counts["applications"] = len(st.Applications)
}

// topologicalOrder выполняет обход Кана. Порядок детерминирован:
// из готовых узлов первым берется объявленный раньше. Цикл или
// отсутствующий родитель - ошибка конфигурации графа.
func topologicalOrder(generators []generator) ([]generator, error) {
	known := make(map[string]bool, len(generators))
	for _, g := range generators {
		known[g.kind] = true
	}

	done := make(map[string]bool, len(generators))
	var ordered []generator

	for len(ordered) < len(generators) {
		progressed := false
		for _, g := range generators {
			if done[g.kind] {
				continue
			}
			ready := true
			for _, parent := range g.parents {
				if !known[parent] {
					return nil, appErrors.New(appErrors.CodeGenerationFailed,
						fmt.Sprintf("entity %q declares unknown parent %q", g.kind, parent))
				}
				if !done[parent] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, g)
				done[g.kind] = true
				progressed = true
			}
		}
		if !progressed {
			return nil, appErrors.New(appErrors.CodeGenerationFailed, "dependency cycle in entity graph")
		}
	}

	return ordered, nil
}
