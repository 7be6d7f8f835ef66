package database

import (
	"fmt"
	"strings"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectGorm открывает соединение по DSN.
// postgres:// - боевая база, все остальное трактуется как путь sqlite
// (в тестах используется "file::memory:?cache=shared").
func ConnectGorm(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// migrationOrder - порядок миграции: родители строго раньше детей.
// Тот же список в обратном порядке используется при полной очистке.
var migrationOrder = []interface{}{
	&models.User{},
	&models.Profile{},
	&models.Skill{},
	&models.Language{},
	&models.UserSkill{},
	&models.UserLanguage{},
	&models.Project{},
	&models.Team{},
	&models.TeamMember{},
	&models.TeamSkillRequirement{},
	&models.Task{},
	&models.Application{},
	&models.ApplicationStage{},
	&models.Interview{},
	&models.Evaluation{},
	&models.Feedback{},
	&models.Document{},
	&models.Notification{},
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(migrationOrder...); err != nil {
		return appErrors.Wrap(err, appErrors.CodeSchemaInitFailed, "failed to migrate schema")
	}
	return nil
}
