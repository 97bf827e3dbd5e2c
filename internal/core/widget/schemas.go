package widget

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
)

const (
	KeyCalendarEvents = "vitrine.calendar.events"
	KeyGoals          = "vitrine.goals"
	KeyProfile        = "vitrine.profile"
)

func identity(raw json.RawMessage) (json.RawMessage, error) {
	return raw, nil
}

var CalendarEventsSchema = Schema[[]model.CalendarEvent]{
	Key:     KeyCalendarEvents,
	Version: 1,
	Default: func() []model.CalendarEvent {
		return []model.CalendarEvent{}
	},
	Upgrades: map[int]Upgrader{
		0: identity,
	},
	Normalize: normalizeCalendarEvents,
}

func normalizeCalendarEvents(events []model.CalendarEvent) []model.CalendarEvent {
	normalized := make([]model.CalendarEvent, 0, len(events))
	for _, e := range events {
		e.Title = strings.TrimSpace(e.Title)
		if e.Title == "" {
			continue
		}

		if _, err := e.Day(); err != nil {
			continue
		}

		if e.ID == "" {
			e.ID = model.NewID()
		}

		normalized = append(normalized, e)
	}

	slices.SortStableFunc(normalized, func(a, b model.CalendarEvent) int {
		return cmp.Or(
			strings.Compare(a.Date, b.Date),
			strings.Compare(a.Time, b.Time),
		)
	})

	return normalized
}

var GoalsSchema = Schema[[]model.Goal]{
	Key:     KeyGoals,
	Version: 2,
	Default: func() []model.Goal {
		return []model.Goal{}
	},
	Upgrades: map[int]Upgrader{
		0: upgradeLegacyGoals,
		1: upgradeGoalIDs,
	},
	Normalize: normalizeGoals,
}

// upgradeLegacyGoals reads the first goals format, an array mixing plain
// strings and objects.
func upgradeLegacyGoals(raw json.RawMessage) (json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(port.ErrInvalidPayload, err.Error())
	}

	goals := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		var label string
		if err := json.Unmarshal(entry, &label); err == nil {
			goals = append(goals, map[string]any{"label": label})
			continue
		}

		var goal map[string]any
		if err := json.Unmarshal(entry, &goal); err != nil {
			continue
		}

		if text, ok := goal["text"]; ok {
			if _, hasLabel := goal["label"]; !hasLabel {
				goal["label"] = text
			}
			delete(goal, "text")
		}

		if completed, ok := goal["completed"]; ok {
			if _, hasDone := goal["done"]; !hasDone {
				goal["done"] = completed
			}
			delete(goal, "completed")
		}

		goals = append(goals, goal)
	}

	return json.Marshal(goals)
}

// upgradeGoalIDs assigns an id to version 1 entries saved without one.
func upgradeGoalIDs(raw json.RawMessage) (json.RawMessage, error) {
	var goals []map[string]any
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, errors.Wrap(port.ErrInvalidPayload, err.Error())
	}

	for _, g := range goals {
		if id, _ := g["id"].(string); id == "" {
			g["id"] = model.NewID()
		}
	}

	return json.Marshal(goals)
}

func normalizeGoals(goals []model.Goal) []model.Goal {
	normalized := make([]model.Goal, 0, len(goals))
	seen := make(map[string]struct{}, len(goals))

	for _, g := range goals {
		g.Label = strings.TrimSpace(g.Label)
		if g.Label == "" {
			continue
		}

		if _, exists := seen[g.ID]; exists || g.ID == "" {
			g.ID = model.NewID()
		}
		seen[g.ID] = struct{}{}

		normalized = append(normalized, g)
	}

	return normalized
}

var ProfileSchema = Schema[model.Profile]{
	Key:     KeyProfile,
	Version: 1,
	Default: func() model.Profile {
		return model.Profile{
			DisplayName: "Administrateur",
			Title:       "Responsable back-office",
		}
	},
	Upgrades: map[int]Upgrader{
		0: identity,
	},
	Normalize: func(p model.Profile) model.Profile {
		p.DisplayName = strings.TrimSpace(p.DisplayName)
		p.Email = strings.TrimSpace(p.Email)
		if p.Avatar != "" && !strings.HasPrefix(p.Avatar, "data:image/") {
			p.Avatar = ""
		}
		return p
	},
}

// Widgets bundles the stores of every admin widget.
type Widgets struct {
	CalendarEvents *Store[[]model.CalendarEvent]
	Goals          *Store[[]model.Goal]
	Profile        *Store[model.Profile]
}

func NewWidgets(backend port.KeyValueStore) *Widgets {
	return &Widgets{
		CalendarEvents: NewStore(backend, CalendarEventsSchema),
		Goals:          NewStore(backend, GoalsSchema),
		Profile:        NewStore(backend, ProfileSchema),
	}
}

// Keys lists the keys of every known widget.
func (w *Widgets) Keys() []string {
	return []string{w.CalendarEvents.Key(), w.Goals.Key(), w.Profile.Key()}
}

// Load returns the current value of the widget stored under key.
func (w *Widgets) Load(ctx context.Context, scope string, key string) (any, error) {
	switch key {
	case w.CalendarEvents.Key():
		return w.CalendarEvents.Load(ctx, scope), nil
	case w.Goals.Key():
		return w.Goals.Load(ctx, scope), nil
	case w.Profile.Key():
		return w.Profile.Load(ctx, scope), nil
	default:
		return nil, errors.Wrapf(port.ErrNotFound, "unknown widget key '%s'", key)
	}
}

// Reset restores the default value of the widget stored under key.
func (w *Widgets) Reset(ctx context.Context, scope string, key string) error {
	switch key {
	case w.CalendarEvents.Key():
		return w.CalendarEvents.Reset(ctx, scope)
	case w.Goals.Key():
		return w.Goals.Reset(ctx, scope)
	case w.Profile.Key():
		return w.Profile.Reset(ctx, scope)
	default:
		return errors.Wrapf(port.ErrNotFound, "unknown widget key '%s'", key)
	}
}
