package service

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
)

// Stats are the key figures displayed across the admin console and the
// public site. They are always computed here so that every page shows the
// same numbers.
type Stats struct {
	Interns             int
	ActiveInterns       int
	Employees           int
	EmployeesOnLeave    int
	Applicants          int
	OpenApplications    int
	Notifications       int
	UnreadNotifications int
	AverageInternScore  float64
}

func ComputeStats(interns []model.Intern, employees []model.Employee, applicants []model.Applicant, notifications []model.Notification) Stats {
	stats := Stats{
		Interns:       len(interns),
		Employees:     len(employees),
		Applicants:    len(applicants),
		Notifications: len(notifications),
	}

	totalScore := 0
	for _, i := range interns {
		if i.Status == model.InternStatusActive {
			stats.ActiveInterns++
		}
		totalScore += i.Score
	}

	if len(interns) > 0 {
		stats.AverageInternScore = float64(totalScore) / float64(len(interns))
	}

	for _, e := range employees {
		if e.Status == model.EmployeeStatusLeave {
			stats.EmployeesOnLeave++
		}
	}

	for _, a := range applicants {
		if a.Stage.Open() {
			stats.OpenApplications++
		}
	}

	for _, n := range notifications {
		if !n.Read {
			stats.UnreadNotifications++
		}
	}

	return stats
}

type StatsService struct {
	sources port.RecordSources
}

// Compute returns the figures of the reference data set.
func (s *StatsService) Compute(ctx context.Context) (*Stats, error) {
	interns, err := s.sources.Interns.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	employees, err := s.sources.Employees.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	applicants, err := s.sources.Applicants.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	notifications, err := s.sources.Notifications.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats := ComputeStats(interns, employees, applicants, notifications)

	return &stats, nil
}

// ComputeWorkspace returns the figures of a visitor workspace.
func (s *StatsService) ComputeWorkspace(w *Workspace) Stats {
	return ComputeStats(
		Snapshot(w, Interns),
		Snapshot(w, Employees),
		Snapshot(w, Applicants),
		Snapshot(w, Notifications),
	)
}

func NewStatsService(sources port.RecordSources) *StatsService {
	return &StatsService{
		sources: sources,
	}
}

// Bucket is a labelled count.
type Bucket struct {
	Label string
	Count int
}

// CountBy groups records by label. Buckets are sorted by decreasing count,
// then by label.
func CountBy[T any](records []T, label func(T) string) []Bucket {
	counts := map[string]int{}
	for _, r := range records {
		counts[label(r)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for _, l := range slices.Sorted(maps.Keys(counts)) {
		buckets = append(buckets, Bucket{Label: l, Count: counts[l]})
	}

	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return buckets
}

type Breakdowns struct {
	InternsByTrack        []Bucket
	InternsByStatus       []Bucket
	EmployeesByDepartment []Bucket
	ApplicantsByStage     []Bucket
}

func ComputeBreakdowns(w *Workspace) Breakdowns {
	interns := Snapshot(w, Interns)

	return Breakdowns{
		InternsByTrack:  CountBy(interns, func(i model.Intern) string { return i.Track }),
		InternsByStatus: CountBy(interns, func(i model.Intern) string { return i.Status.Label() }),
		EmployeesByDepartment: CountBy(Snapshot(w, Employees), func(e model.Employee) string {
			return e.Department
		}),
		ApplicantsByStage: CountBy(Snapshot(w, Applicants), func(a model.Applicant) string {
			return a.Stage.Label()
		}),
	}
}
