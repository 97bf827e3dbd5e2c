package seed

import (
	"context"
	"testing"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/pkg/errors"
)

func TestSourceRecords(t *testing.T) {
	ctx := context.Background()
	source := NewSource()

	records, err := source.Records(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 31, len(records.Interns); e != g {
		t.Errorf("len(records.Interns): expected %d, got %d", e, g)
	}

	assertUniqueIDs(t, "interns", records.Interns, func(r model.Intern) string { return r.ID })
	assertUniqueIDs(t, "employees", records.Employees, func(r model.Employee) string { return r.ID })
	assertUniqueIDs(t, "applicants", records.Applicants, func(r model.Applicant) string { return r.ID })
	assertUniqueIDs(t, "notifications", records.Notifications, func(r model.Notification) string { return r.ID })

	for _, intern := range records.Interns {
		if intern.StartDate.IsZero() {
			t.Errorf("intern '%s' should have a start date", intern.ID)
		}
		if intern.Score < 0 || intern.Score > 100 {
			t.Errorf("intern '%s' has an invalid score %d", intern.ID, intern.Score)
		}
	}
}

func TestSourceReturnsCopies(t *testing.T) {
	ctx := context.Background()
	source := NewSource()

	first, err := source.Records(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	first.Interns[0].Name = "modified"

	second, err := source.Records(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if second.Interns[0].Name == "modified" {
		t.Errorf("seed records should not be shared between callers")
	}
}

func TestSourceSiteContent(t *testing.T) {
	content, err := NewSource().SiteContent(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Datawise", content.Company.Name; e != g {
		t.Errorf("content.Company.Name: expected %s, got %s", e, g)
	}

	if len(content.Services) == 0 {
		t.Errorf("content.Services: expected services")
	}
}

func assertUniqueIDs[T any](t *testing.T, kind string, records []T, id func(T) string) {
	t.Helper()

	if len(records) == 0 {
		t.Errorf("%s: expected records", kind)
	}

	seen := map[string]struct{}{}
	for _, r := range records {
		if _, exists := seen[id(r)]; exists {
			t.Errorf("%s: duplicated id '%s'", kind, id(r))
		}
		seen[id(r)] = struct{}{}
	}
}
