package main

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"lead-console/internal/api"
	"lead-console/internal/config"
	"lead-console/internal/domains/upload/service"
	"lead-console/internal/session"
	"lead-console/pkg/logger"
)

// app wires config, the auth session context, the API client and the upload
// orchestrator for one CLI invocation.
type app struct {
	cfg  *config.Config
	sess *session.Context
	svc  *service.Service
}

func newApp() (*app, error) {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.App.Environment)

	var user *session.User
	if cfg.API.UserName != "" {
		user = &session.User{Name: cfg.API.UserName, Role: "admin"}
	}
	sess := session.New(cfg.API.Token, user)

	client := api.NewClient(cfg.API.BaseURL, sess.Token(), api.WithHTTPClient(&http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}))

	return &app{
		cfg:  cfg,
		sess: sess,
		svc:  service.NewService(client),
	}, nil
}

// uploadOptions are the user-supplied knobs of the upload command.
type uploadOptions struct {
	FilePath string
	Source   string
}

func (o uploadOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.FilePath, validation.Required.Error("a spreadsheet file is required")),
		validation.Field(&o.Source, validation.Length(0, 64).Error("source label must be at most 64 characters")),
	)
}
