package main

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/aiservice/core/config"
	"github.com/dmitrymomot/aiservice/core/embedding"
	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/core/server"
	"github.com/dmitrymomot/aiservice/middleware"
)

// Config is the process configuration read from the environment and .env.
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"AI Microservice"`
	AppVersion string `env:"APP_VERSION" envDefault:"0.1.0"`
	Env        string `env:"ENV" envDefault:"development"`
	Debug      bool   `env:"DEBUG" envDefault:"true"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"INFO"`

	CORSOrigins config.List `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`
	MaxBodySize int64       `env:"MAX_BODY_SIZE" envDefault:"1048576"` // 1MB

	Embedding embedding.Config
	Server    server.Config
}

func (c Config) isDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}

// newLogger builds a text logger in development and a JSON logger elsewhere.
// An unparsable LOG_LEVEL falls back to INFO and is reported once.
func newLogger(cfg Config) *slog.Logger {
	level, levelErr := logger.ParseLevel(cfg.LogLevel)

	opts := []logger.Option{logger.WithProduction(cfg.AppName)}
	if cfg.isDevelopment() {
		opts = []logger.Option{logger.WithDevelopment(cfg.AppName)}
	}
	opts = append(opts,
		logger.WithLevel(level),
		logger.WithAttr(logger.Version(cfg.AppVersion)),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)

	log := logger.New(opts...)
	if levelErr != nil {
		log.Warn("invalid log level, using INFO", logger.Component("config"), logger.Error(levelErr))
	}
	return log
}
