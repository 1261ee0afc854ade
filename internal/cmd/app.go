package cmd

import (
	"fmt"
	"time"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/config"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/session"
)

// app bundles everything a command needs to talk to the server.
type app struct {
	cfg    *config.Config
	store  *session.Store
	client *api.Client
	log    *logging.Logger
}

// newApp loads and validates the configuration, opens the session store,
// and builds the API client. Callers must Close when done.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, config.ValidationErrors(errs)
	}

	stateDir := cfg.StateDir()

	log := logging.Nop()
	if cfg.Logging.Enabled {
		if fileLog, err := logging.NewLogger(stateDir, cfg.Logging.Level); err == nil {
			log = fileLog
		}
		// A broken log file never blocks the client.
	}

	store, err := session.NewStore(stateDir)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := api.New(cfg.Server.BaseURL, store, &api.Options{
		AuthTimeout: time.Duration(cfg.Server.AuthTimeoutSeconds) * time.Second,
		Logger:      log,
	})

	return &app{cfg: cfg, store: store, client: client, log: log}, nil
}

func (a *app) Close() {
	_ = a.log.Close()
}
