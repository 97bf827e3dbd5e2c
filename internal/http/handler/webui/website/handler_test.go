package website

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/vitrine/internal/adapter/seed"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/pkg/errors"
)

func TestHomePage(t *testing.T) {
	source := seed.NewSource()
	handler := NewHandler(source, service.NewStatsService(source.RecordSources()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %v, got %v", e, g)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Datawise", strings.TrimSpace(doc.Find(".site-brand").Text()); e != g {
		t.Errorf("brand: expected %v, got %v", e, g)
	}

	if e, g := 4, doc.Find("#services .service").Length(); e != g {
		t.Errorf("services: expected %v, got %v", e, g)
	}

	if e, g := "pipelines fiables", doc.Find("#engineering strong").First().Text(); e != g {
		t.Errorf("markdown: expected %v, got %v", e, g)
	}

	// Static company figures plus the ones computed from the records
	if e, g := 7, doc.Find(".marquee-item").Length(); e != g {
		t.Errorf("figures: expected %v, got %v", e, g)
	}

	marquee := doc.Find(".marquee").Text()
	if !strings.Contains(marquee, "stagiaires accompagnés") {
		t.Errorf("marquee: expected computed figures, got %q", marquee)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}
}
