package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kaloritakip/kta/internal/adapters/api"
	sessionfile "github.com/kaloritakip/kta/internal/adapters/session/file"
	"github.com/kaloritakip/kta/internal/application"
	"github.com/spf13/viper"
)

const defaultBaseURL = "http://localhost:5000/api"

type app struct {
	service *application.Service
	session *application.Session
	baseURL string
	now     func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".kta")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetDefault("api.base_url", defaultBaseURL)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := envOrDefault("KTA_API_BASE_URL", v.GetString("api.base_url"))

	credentials := sessionfile.NewStore(configDir)
	session := application.NewSession(credentials)
	gateway := api.NewClient(baseURL, http.DefaultClient, credentials)

	return &app{
		service: application.NewService(gateway, session, nil),
		session: session,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

func requireLogin(ctx context.Context, app *app) error {
	loggedIn, err := app.session.LoggedIn(ctx)
	if err != nil {
		return fmt.Errorf("read session credential: %w", err)
	}
	if !loggedIn {
		return application.ErrNotLoggedIn
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
