package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

// WorkspaceRegistry keeps one workspace per session. Idle workspaces are
// evicted after the configured TTL and come back seeded on next access.
type WorkspaceRegistry struct {
	sources    port.RecordSources
	workspaces *expirable.LRU[string, *Workspace]
	mu         sync.Mutex
}

func NewWorkspaceRegistry(sources port.RecordSources, size int, ttl time.Duration) *WorkspaceRegistry {
	onEvict := func(id string, w *Workspace) {
		metrics.Workspaces.Dec()
		slog.Debug("workspace evicted", slog.String("workspace", id))
	}

	return &WorkspaceRegistry{
		sources:    sources,
		workspaces: expirable.NewLRU(size, onEvict, ttl),
	}
}

// Get returns the workspace of the given session, creating it when needed.
func (r *WorkspaceRegistry) Get(ctx context.Context, sessionID string) (*Workspace, error) {
	if sessionID == "" {
		return nil, errors.New("session id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if w, exists := r.workspaces.Get(sessionID); exists {
		// Refresh expiration
		r.workspaces.Add(sessionID, w)
		return w, nil
	}

	w, err := newWorkspace(ctx, sessionID, r.sources)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create workspace for session '%s'", sessionID)
	}

	r.workspaces.Add(sessionID, w)
	metrics.Workspaces.Inc()

	slog.DebugContext(ctx, "workspace created", slog.String("workspace", sessionID))

	return w, nil
}

// Reset restores every list of the session workspace to the seed.
func (r *WorkspaceRegistry) Reset(ctx context.Context, sessionID string) error {
	w, err := r.Get(ctx, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := w.seed(ctx, r.sources); err != nil {
		return errors.WithStack(err)
	}

	metrics.WorkspaceResets.Inc()

	return nil
}

// ResetKind restores one list of the session workspace to the seed.
func (r *WorkspaceRegistry) ResetKind(ctx context.Context, sessionID string, kind model.Kind) error {
	w, err := r.Get(ctx, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := w.reseedKind(ctx, r.sources, kind); err != nil {
		return errors.WithStack(err)
	}

	metrics.WorkspaceResets.Inc()

	return nil
}

func (r *WorkspaceRegistry) Len() int {
	return r.workspaces.Len()
}
