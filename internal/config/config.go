package config

import (
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Env string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Seed SeedConfig `yaml:"seed"`
}

// SeedConfig - счетчики и настройки генерации. Нулевой счетчик
// означает "использовать значение по умолчанию".
type SeedConfig struct {
	UserCount         int    `yaml:"user_count" validate:"gte=0"`
	ProjectCount      int    `yaml:"project_count" validate:"gte=0"`
	TaskCount         int    `yaml:"task_count" validate:"gte=0"`
	ApplicationCount  int    `yaml:"application_count" validate:"gte=0"`
	EvaluationCount   int    `yaml:"evaluation_count" validate:"gte=0"`
	FeedbackCount     int    `yaml:"feedback_count" validate:"gte=0"`
	InterviewCount    int    `yaml:"interview_count" validate:"gte=0"`
	DocumentCount     int    `yaml:"document_count" validate:"gte=0"`
	NotificationCount int    `yaml:"notification_count" validate:"gte=0"`
	RandomSeed        int64  `yaml:"random_seed"`
	EmailDomain       string `yaml:"email_domain"`
	Password          string `yaml:"password"`
	WipeFirst         bool   `yaml:"wipe_first"`
}

var AppConfig *Config

// LoadConfig читает config.yaml, затем переопределяет значения из env.
// DATABASE_URL задан -> режим тестов/CI, yaml не обязателен.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to decode config file: %v", err)
		}
	} else {
		cfg.Database.DSN = dbURL
	}

	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}

	if seedStr := os.Getenv("SEED_RANDOM_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			log.Fatalf("SEED_RANDOM_SEED must be an integer: %v", err)
		}
		cfg.Seed.RandomSeed = seed
	}

	if cfg.Seed.EmailDomain == "" {
		cfg.Seed.EmailDomain = "volunteerhub.org"
	}
	if cfg.Seed.Password == "" {
		cfg.Seed.Password = "password123"
	}

	if err := validator.New().Struct(&cfg.Seed); err != nil {
		log.Fatalf("Invalid seed configuration: %v", err)
	}

	AppConfig = &cfg
}
