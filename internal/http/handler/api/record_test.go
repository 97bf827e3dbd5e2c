package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/pkg/errors"
)

func TestListRecordsSearchFailure(t *testing.T) {
	var failing searchFunc[model.Intern] = func(term string) ([]model.Intern, error) {
		return nil, errors.New("workspace unavailable")
	}

	req := httptest.NewRequest(http.MethodGet, "/records/interns?q=martin", nil)
	res := httptest.NewRecorder()

	listRecords(res, req, model.KindIntern, failing)

	if e, g := http.StatusInternalServerError, res.Code; e != g {
		t.Fatalf("res.Code: expected %v, got %v", e, g)
	}

	var payload ErrorResponse
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := http.StatusText(http.StatusInternalServerError), payload.Error; e != g {
		t.Errorf("payload.Error: expected %v, got %v", e, g)
	}
}

func TestListRecordsSearchTerm(t *testing.T) {
	var received string

	var search searchFunc[model.Intern] = func(term string) ([]model.Intern, error) {
		received = term
		return []model.Intern{{ID: "int-001"}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/records/interns?q=+d", nil)
	res := httptest.NewRecorder()

	listRecords(res, req, model.KindIntern, search)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %v, got %v", e, g)
	}

	if e, g := " d", received; e != g {
		t.Errorf("search term: expected %q, got %q", e, g)
	}
}
