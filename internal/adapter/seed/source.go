// Package seed provides the static records and site content every workspace
// starts from. Data is embedded in the binary.
package seed

import (
	"context"
	"embed"
	"slices"
	"sync"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var data embed.FS

type Records struct {
	Interns       []model.Intern       `yaml:"interns"`
	Employees     []model.Employee     `yaml:"employees"`
	Applicants    []model.Applicant    `yaml:"applicants"`
	Notifications []model.Notification `yaml:"notifications"`
}

type Source struct {
	loadOnce sync.Once
	records  *Records
	content  *model.SiteContent
	loadErr  error

	readFile func(name string) ([]byte, error)
}

func (s *Source) load() error {
	s.loadOnce.Do(func() {
		var records Records
		if err := s.decode("data/records.yaml", &records); err != nil {
			s.loadErr = errors.WithStack(err)
			return
		}

		var content model.SiteContent
		if err := s.decode("data/site.yaml", &content); err != nil {
			s.loadErr = errors.WithStack(err)
			return
		}

		s.records = &records
		s.content = &content
	})

	return s.loadErr
}

func (s *Source) decode(name string, v any) error {
	raw, err := s.readFile(name)
	if err != nil {
		return errors.Wrapf(err, "could not read '%s'", name)
	}

	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "could not decode '%s'", name)
	}

	return nil
}

// Records returns a copy of every seed record.
func (s *Source) Records(ctx context.Context) (*Records, error) {
	if err := s.load(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Records{
		Interns:       slices.Clone(s.records.Interns),
		Employees:     slices.Clone(s.records.Employees),
		Applicants:    slices.Clone(s.records.Applicants),
		Notifications: slices.Clone(s.records.Notifications),
	}, nil
}

// SiteContent implements port.SiteContentSource.
func (s *Source) SiteContent(ctx context.Context) (*model.SiteContent, error) {
	if err := s.load(); err != nil {
		return nil, errors.WithStack(err)
	}

	content := *s.content
	content.Services = slices.Clone(content.Services)
	content.Figures = slices.Clone(content.Figures)

	return &content, nil
}

// RecordSources exposes the seed as one source per record kind.
func (s *Source) RecordSources() port.RecordSources {
	return port.RecordSources{
		Interns: port.RecordSourceFunc[model.Intern](func(ctx context.Context) ([]model.Intern, error) {
			records, err := s.Records(ctx)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return records.Interns, nil
		}),
		Employees: port.RecordSourceFunc[model.Employee](func(ctx context.Context) ([]model.Employee, error) {
			records, err := s.Records(ctx)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return records.Employees, nil
		}),
		Applicants: port.RecordSourceFunc[model.Applicant](func(ctx context.Context) ([]model.Applicant, error) {
			records, err := s.Records(ctx)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return records.Applicants, nil
		}),
		Notifications: port.RecordSourceFunc[model.Notification](func(ctx context.Context) ([]model.Notification, error) {
			records, err := s.Records(ctx)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			return records.Notifications, nil
		}),
	}
}

// Raw returns the embedded seed file.
func (s *Source) Raw(name string) ([]byte, error) {
	raw, err := s.readFile("data/" + name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return raw, nil
}

func NewSource() *Source {
	return &Source{
		readFile: data.ReadFile,
	}
}

var _ port.SiteContentSource = &Source{}
