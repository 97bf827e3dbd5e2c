package service

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
)

// Workspace holds the record lists of one visitor. Managers are only
// reached through Use, which serializes access.
type Workspace struct {
	id        string
	createdAt time.Time

	mu            sync.Mutex
	interns       *collection.Manager[model.Intern]
	employees     *collection.Manager[model.Employee]
	applicants    *collection.Manager[model.Applicant]
	notifications *collection.Manager[model.Notification]
}

func (w *Workspace) ID() string {
	return w.id
}

func (w *Workspace) CreatedAt() time.Time {
	return w.createdAt
}

// ManagerSelector picks one of the workspace managers.
type ManagerSelector[T any] func(w *Workspace) *collection.Manager[T]

var (
	Interns       ManagerSelector[model.Intern]       = func(w *Workspace) *collection.Manager[model.Intern] { return w.interns }
	Employees     ManagerSelector[model.Employee]     = func(w *Workspace) *collection.Manager[model.Employee] { return w.employees }
	Applicants    ManagerSelector[model.Applicant]    = func(w *Workspace) *collection.Manager[model.Applicant] { return w.applicants }
	Notifications ManagerSelector[model.Notification] = func(w *Workspace) *collection.Manager[model.Notification] { return w.notifications }
)

// Use runs fn with exclusive access to the selected manager.
func Use[T any](w *Workspace, selector ManagerSelector[T], fn func(m *collection.Manager[T]) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return fn(selector(w))
}

// Snapshot returns a copy of the selected manager working list.
func Snapshot[T any](w *Workspace, selector ManagerSelector[T]) []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	return selector(w).All()
}

func newWorkspace(ctx context.Context, id string, sources port.RecordSources) (*Workspace, error) {
	w := &Workspace{
		id:        id,
		createdAt: time.Now(),
	}

	if err := w.seed(ctx, sources); err != nil {
		return nil, errors.WithStack(err)
	}

	return w, nil
}

func (w *Workspace) seed(ctx context.Context, sources port.RecordSources) error {
	interns, err := sources.Interns.List(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list interns")
	}

	employees, err := sources.Employees.List(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list employees")
	}

	applicants, err := sources.Applicants.List(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list applicants")
	}

	notifications, err := sources.Notifications.List(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list notifications")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.interns = collection.New(InternAccessors, interns)
	w.employees = collection.New(EmployeeAccessors, employees)
	w.applicants = collection.New(ApplicantAccessors, applicants)
	w.notifications = collection.New(NotificationAccessors, notifications)

	return nil
}

func (w *Workspace) reseedKind(ctx context.Context, sources port.RecordSources, kind model.Kind) error {
	switch kind {
	case model.KindIntern:
		return reseed(ctx, w, Interns, sources.Interns)
	case model.KindEmployee:
		return reseed(ctx, w, Employees, sources.Employees)
	case model.KindApplicant:
		return reseed(ctx, w, Applicants, sources.Applicants)
	case model.KindNotification:
		return reseed(ctx, w, Notifications, sources.Notifications)
	default:
		return errors.Wrapf(port.ErrUnknownKind, "kind '%s'", kind)
	}
}

func reseed[T any](ctx context.Context, w *Workspace, selector ManagerSelector[T], source port.RecordSource[T]) error {
	records, err := source.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return Use(w, selector, func(m *collection.Manager[T]) error {
		m.Seed(records)
		return nil
	})
}
