package widget

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bornholm/vitrine/internal/adapter/memory"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const testScope = "test-session"

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	widgets := NewWidgets(memory.NewKeyValueStore())

	profile := model.Profile{
		DisplayName: "Awa Diallo",
		Title:       "Data engineer",
		Email:       "awa@example.org",
		Avatar:      "data:image/png;base64,AAAA",
	}

	if err := widgets.Profile.Save(ctx, testScope, profile); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := profile, widgets.Profile.Load(ctx, testScope); e != g {
		t.Errorf("widgets.Profile.Load(): expected %+v, got %+v", e, g)
	}

	if e, g := ProfileSchema.Default(), widgets.Profile.Load(ctx, "another-session"); e != g {
		t.Errorf("widgets.Profile.Load(): expected default %+v, got %+v", e, g)
	}
}

func TestStoreWritesEnvelope(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	goals := []model.Goal{{ID: "g1", Label: "Recruter deux stagiaires", CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}}

	if err := widgets.Goals.Save(ctx, testScope, goals); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	raw, err := backend.Get(ctx, testScope, KeyGoals)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := GoalsSchema.Version, env.Version; e != g {
		t.Errorf("env.Version: expected %d, got %d", e, g)
	}
}

func TestStoreFallsBackOnCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	payloads := []string{
		`{not json`,
		`{"version":1,"data":"not an array"}`,
		`{"version":99,"data":[]}`,
		`42`,
	}

	for _, payload := range payloads {
		if err := backend.Put(ctx, testScope, KeyCalendarEvents, []byte(payload)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		events := widgets.CalendarEvents.Load(ctx, testScope)

		if e, g := 0, len(events); e != g {
			t.Errorf("payload %q: len(events): expected %d, got %d", payload, e, g)
		}

		if events == nil {
			t.Errorf("payload %q: expected non nil default", payload)
		}
	}
}

func TestStoreUpgradesLegacyGoals(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	legacy := `[
		"Publier le rapport trimestriel",
		{"text": "Former les stagiaires", "completed": true},
		{"id": "kept", "label": "Mettre à jour le site", "done": false},
		{"label": "   "}
	]`

	if err := backend.Put(ctx, testScope, KeyGoals, []byte(legacy)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	goals := widgets.Goals.Load(ctx, testScope)

	t.Logf("goals: %s", spew.Sdump(goals))

	if e, g := 3, len(goals); e != g {
		t.Fatalf("len(goals): expected %d, got %d", e, g)
	}

	for _, goal := range goals {
		if goal.ID == "" {
			t.Errorf("goal '%s' should have an id", goal.Label)
		}
	}

	if e, g := "Former les stagiaires", goals[1].Label; e != g {
		t.Errorf("goals[1].Label: expected %s, got %s", e, g)
	}

	if !goals[1].Done {
		t.Errorf("goals[1].Done: expected true")
	}

	if e, g := "kept", goals[2].ID; e != g {
		t.Errorf("goals[2].ID: expected %s, got %s", e, g)
	}
}

func TestStoreKeepsGeneratedGoalIDsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	if err := backend.Put(ctx, testScope, KeyGoals, []byte(`["Publier le rapport"]`)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	first := widgets.Goals.Load(ctx, testScope)
	second := widgets.Goals.Load(ctx, testScope)

	if e, g := 1, len(first); e != g {
		t.Fatalf("len(first): expected %d, got %d", e, g)
	}

	if e, g := first[0].ID, second[0].ID; e != g {
		t.Fatalf("second load id: expected %s, got %s", e, g)
	}

	rendered := first[0].ID

	updated, err := widgets.Goals.Update(ctx, testScope, func(goals []model.Goal) []model.Goal {
		for i := range goals {
			if goals[i].ID == rendered {
				goals[i].Done = !goals[i].Done
			}
		}
		return goals
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !updated[0].Done {
		t.Errorf("goal %s should be done after toggle, got %s", rendered, spew.Sdump(updated))
	}

	if reloaded := widgets.Goals.Load(ctx, testScope); !reloaded[0].Done || reloaded[0].ID != rendered {
		t.Errorf("toggle should be persisted, got %s", spew.Sdump(reloaded))
	}

	raw, err := backend.Get(ctx, testScope, KeyGoals)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := GoalsSchema.Version, env.Version; e != g {
		t.Errorf("env.Version: expected %d, got %d", e, g)
	}
}

func TestStoreKeepsGeneratedEventIDsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	payload := `{"version":1,"data":[{"title":"Revue trimestrielle","date":"2026-03-10"}]}`

	if err := backend.Put(ctx, testScope, KeyCalendarEvents, []byte(payload)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	first := widgets.CalendarEvents.Load(ctx, testScope)
	second := widgets.CalendarEvents.Load(ctx, testScope)

	if e, g := 1, len(first); e != g {
		t.Fatalf("len(first): expected %d, got %d", e, g)
	}

	if first[0].ID == "" {
		t.Fatalf("event should have an id")
	}

	if e, g := first[0].ID, second[0].ID; e != g {
		t.Errorf("second load id: expected %s, got %s", e, g)
	}
}

func TestStoreUpgradesVersionOneGoalsWithoutID(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKeyValueStore()
	widgets := NewWidgets(backend)

	payload := `{"version":1,"data":[{"label":"Sans identifiant","done":false},{"id":"","label":"Identifiant vide"}]}`

	if err := backend.Put(ctx, testScope, KeyGoals, []byte(payload)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	goals := widgets.Goals.Load(ctx, testScope)

	if e, g := 2, len(goals); e != g {
		t.Fatalf("len(goals): expected %d, got %d", e, g)
	}

	if goals[0].ID == "" || goals[1].ID == "" || goals[0].ID == goals[1].ID {
		t.Errorf("expected distinct generated ids, got %s", spew.Sdump(goals))
	}
}

func TestCalendarEventsAreNormalized(t *testing.T) {
	ctx := context.Background()
	widgets := NewWidgets(memory.NewKeyValueStore())

	events := []model.CalendarEvent{
		{Title: "Revue trimestrielle", Date: "2026-03-10", Time: "14:00"},
		{Title: "Invalide", Date: "10/03/2026"},
		{Title: "  ", Date: "2026-03-01"},
		{Title: "Accueil des stagiaires", Date: "2026-03-10", Time: "09:00"},
		{Title: "Point mensuel", Date: "2026-02-28"},
	}

	if err := widgets.CalendarEvents.Save(ctx, testScope, events); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	loaded := widgets.CalendarEvents.Load(ctx, testScope)

	titles := make([]string, 0, len(loaded))
	for _, e := range loaded {
		titles = append(titles, e.Title)
		if e.ID == "" {
			t.Errorf("event '%s' should have an id", e.Title)
		}
	}

	expected := []string{"Point mensuel", "Accueil des stagiaires", "Revue trimestrielle"}
	if e, g := spew.Sdump(expected), spew.Sdump(titles); e != g {
		t.Errorf("titles: expected %s, got %s", e, g)
	}
}

func TestStoreUpdateAndReset(t *testing.T) {
	ctx := context.Background()
	widgets := NewWidgets(memory.NewKeyValueStore())

	_, err := widgets.Goals.Update(ctx, testScope, func(goals []model.Goal) []model.Goal {
		return append(goals, model.Goal{Label: "Nouveau"})
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(widgets.Goals.Load(ctx, testScope)); e != g {
		t.Fatalf("len(goals): expected %d, got %d", e, g)
	}

	if err := widgets.Goals.Reset(ctx, testScope); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(widgets.Goals.Load(ctx, testScope)); e != g {
		t.Errorf("len(goals): expected %d, got %d", e, g)
	}
}

func TestWidgetsByKey(t *testing.T) {
	ctx := context.Background()
	widgets := NewWidgets(memory.NewKeyValueStore())

	goals := []model.Goal{{ID: "g1", Label: "Relire les rapports"}}
	if err := widgets.Goals.Save(ctx, testScope, goals); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	value, err := widgets.Load(ctx, testScope, KeyGoals)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	loaded, ok := value.([]model.Goal)
	if !ok {
		t.Fatalf("expected []model.Goal, got %T", value)
	}

	if e, g := 1, len(loaded); e != g {
		t.Errorf("len(loaded): expected %v, got %v", e, g)
	}

	if err := widgets.Reset(ctx, testScope, KeyGoals); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(widgets.Goals.Load(ctx, testScope)); e != g {
		t.Errorf("len(goals) after reset: expected %v, got %v", e, g)
	}

	if _, err := widgets.Load(ctx, testScope, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %v", err)
	}
}
