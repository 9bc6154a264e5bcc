package cmd

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/navneetshukla17/primetrade-ai-analysis/api"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/config"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/logger"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/session"
)

// InitializeDependencies wires config, logging and the session cache
// into an api handler. configPath may be empty; the config then comes
// from PRIMETRADE_CONFIG or built-in defaults.
func InitializeDependencies(configPath string) (*api.ApiHandler, error) {
	// missing .env is fine, env vars may come from the shell
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("PRIMETRADE_CONFIG")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New()

	return &api.ApiHandler{
		Sessions: session.NewManager(cfg, log),
		Config:   cfg,
		Logger:   log,
	}, nil
}
