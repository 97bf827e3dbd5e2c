package port

import (
	"context"

	"github.com/bornholm/vitrine/internal/core/model"
)

// RecordSource provides the records a workspace is seeded with.
type RecordSource[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type RecordSourceFunc[T any] func(ctx context.Context) ([]T, error)

// List implements RecordSource.
func (fn RecordSourceFunc[T]) List(ctx context.Context) ([]T, error) {
	return fn(ctx)
}

// RecordSources groups the sources of every record kind.
type RecordSources struct {
	Interns       RecordSource[model.Intern]
	Employees     RecordSource[model.Employee]
	Applicants    RecordSource[model.Applicant]
	Notifications RecordSource[model.Notification]
}

type SiteContentSource interface {
	SiteContent(ctx context.Context) (*model.SiteContent, error)
}
