package api

import (
	"agrodirect/app"
	"agrodirect/config"
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

var (
	instance *app.App
	initErr  error
	once     sync.Once
)

func initApp() {
	once.Do(func() {
		cfg := config.LoadConfig()
		cfg.AppEnv = "production"

		logger, err := config.NewLogger(cfg)
		if err != nil {
			logger = zap.NewNop()
		}

		instance, initErr = app.New(context.Background(), cfg, logger)
		if initErr != nil {
			logger.Error("failed to initialise app", zap.Error(initErr))
		}
	})
}

// Handler is the serverless entry point; it serves the same routes as the
// serve command.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	instance.Router.ServeHTTP(w, r)
}
