package service

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/pkg/errors"
)

func TestWorkspaceRegistryIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	registry := NewWorkspaceRegistry(testSources(), 10, time.Minute)

	first, err := registry.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	err = Use(first, Interns, func(m *collection.Manager[model.Intern]) error {
		m.RequestDelete("int-1")
		m.Confirm()
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := registry.Get(ctx, "session-2")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(Snapshot(first, Interns)); e != g {
		t.Errorf("first workspace interns: expected %v, got %v", e, g)
	}

	if e, g := 4, len(Snapshot(second, Interns)); e != g {
		t.Errorf("second workspace interns: expected %v, got %v", e, g)
	}

	again, err := registry.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if again != first {
		t.Errorf("expected same workspace for same session")
	}

	if e, g := 2, registry.Len(); e != g {
		t.Errorf("registry.Len(): expected %v, got %v", e, g)
	}
}

func TestWorkspaceRegistryReset(t *testing.T) {
	ctx := context.Background()
	registry := NewWorkspaceRegistry(testSources(), 10, time.Minute)

	w, err := registry.Get(ctx, "session")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_ = Use(w, Employees, func(m *collection.Manager[model.Employee]) error {
		m.EnterSelectMode()
		m.ToggleSelectAll()
		m.RequestDeleteSelected()
		m.Confirm()
		return nil
	})

	_ = Use(w, Applicants, func(m *collection.Manager[model.Applicant]) error {
		m.RequestDelete("app-1")
		m.Confirm()
		return nil
	})

	if err := registry.ResetKind(ctx, "session", model.KindEmployee); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(Snapshot(w, Employees)); e != g {
		t.Errorf("employees after kind reset: expected %v, got %v", e, g)
	}

	if e, g := 2, len(Snapshot(w, Applicants)); e != g {
		t.Errorf("applicants after kind reset: expected %v, got %v", e, g)
	}

	if err := registry.Reset(ctx, "session"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(Snapshot(w, Applicants)); e != g {
		t.Errorf("applicants after reset: expected %v, got %v", e, g)
	}

	if err := registry.ResetKind(ctx, "session", model.Kind("unknown")); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestWorkspaceRegistryRequiresSession(t *testing.T) {
	registry := NewWorkspaceRegistry(testSources(), 10, time.Minute)

	if _, err := registry.Get(context.Background(), ""); err == nil {
		t.Errorf("expected error for empty session id")
	}
}
