package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %v, got %v", e, g)
	}

	if e, g := "vitrine_session", conf.HTTP.Session.Cookie.Name; e != g {
		t.Errorf("conf.HTTP.Session.Cookie.Name: expected %v, got %v", e, g)
	}

	if e, g := 380.0, conf.Panel.MaxWidth; e != g {
		t.Errorf("conf.Panel.MaxWidth: expected %v, got %v", e, g)
	}
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("VITRINE_LOGGER_LEVEL", "DEBUG")
	t.Setenv("VITRINE_HTTP_ADDRESS", ":8080")
	t.Setenv("VITRINE_HTTP_SESSION_KEYS", "first,second")
	t.Setenv("VITRINE_HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("VITRINE_WORKSPACE_TTL", "30m")
	t.Setenv("VITRINE_STORAGE_DATABASE_DSN", ":memory:")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %v, got %v", e, g)
	}

	if e, g := ":8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected %v, got %v", e, g)
	}

	if e, g := 2, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected %v, got %v", e, g)
	}

	if e, g := 2, len(conf.HTTP.CORS.AllowedOrigins); e != g {
		t.Errorf("len(conf.HTTP.CORS.AllowedOrigins): expected %v, got %v", e, g)
	}

	if e, g := 30*time.Minute, conf.Workspace.TTL; e != g {
		t.Errorf("conf.Workspace.TTL: expected %v, got %v", e, g)
	}

	if e, g := ":memory:", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected %v, got %v", e, g)
	}
}
