package collection

import (
	"slices"
	"testing"
)

func TestRequestDeleteThenCancel(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.ToggleSelectOne("2")
	m.ToggleSelectOne("3")

	m.RequestDelete("1")

	if e, g := (Intent{Mode: IntentSingle, TargetID: "1"}), m.Intent(); e != g {
		t.Fatalf("m.Intent(): expected %v, got %v", e, g)
	}

	m.Cancel()

	if m.Intent().Pending() {
		t.Errorf("m.Intent().Pending(): expected false")
	}

	if e, g := 5, m.Len(); e != g {
		t.Errorf("m.Len(): expected %d, got %d", e, g)
	}

	if e, g := []string{"2", "3"}, m.Selected(); !slices.Equal(e, g) {
		t.Errorf("m.Selected(): expected %v, got %v", e, g)
	}

	m.RequestDeleteSelected()
	m.Cancel()

	if e, g := []string{"2", "3"}, m.Selected(); !slices.Equal(e, g) {
		t.Errorf("m.Selected(): expected %v, got %v", e, g)
	}

	if !m.SelectMode() {
		t.Errorf("m.SelectMode(): expected select mode to survive cancel")
	}
}

func TestRequestDeleteThenConfirm(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.ToggleSelectOne("4")

	m.OpenDetailByID("2")
	m.RequestDelete("2")

	removed := m.Confirm()

	if e, g := []string{"2"}, ids(removed); !slices.Equal(e, g) {
		t.Fatalf("ids(removed): expected %v, got %v", e, g)
	}

	if e, g := []string{"1", "3", "4", "5"}, ids(m.All()); !slices.Equal(e, g) {
		t.Errorf("ids(m.All()): expected %v, got %v", e, g)
	}

	if _, open := m.Detail(); open {
		t.Errorf("m.Detail(): expected detail to be closed")
	}

	if m.SelectMode() || m.SelectedCount() != 0 {
		t.Errorf("expected selection to be reset after confirm")
	}

	if m.Intent().Pending() {
		t.Errorf("m.Intent().Pending(): expected false")
	}
}

func TestConfirmKeepsUnrelatedDetailOpen(t *testing.T) {
	m := newTestManager()

	m.OpenDetailByID("3")
	m.RequestDelete("1")
	m.Confirm()

	detail, open := m.Detail()
	if !open {
		t.Fatalf("m.Detail(): expected detail to stay open")
	}

	if e, g := "3", detail.id; e != g {
		t.Errorf("detail.id: expected %s, got %s", e, g)
	}
}

func TestRequestDeleteUnknownIsNoop(t *testing.T) {
	m := newTestManager()

	m.RequestDelete("unknown")

	if m.Intent().Pending() {
		t.Errorf("m.Intent().Pending(): expected false")
	}
}

func TestRequestDeleteSelectedWithEmptySelection(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()

	m.RequestDeleteSelected()

	if e, g := IntentNone, m.Intent().Mode; e != g {
		t.Errorf("m.Intent().Mode: expected %v, got %v", e, g)
	}
}

func TestBulkDeleteUsesSelectionAtConfirmation(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.ToggleSelectOne("1")
	m.ToggleSelectOne("2")

	m.RequestDeleteSelected()

	if e, g := IntentBulk, m.Intent().Mode; e != g {
		t.Fatalf("m.Intent().Mode: expected %v, got %v", e, g)
	}

	m.ToggleSelectOne("2")
	m.ToggleSelectOne("5")

	if e, g := []string{"1", "5"}, ids(m.PendingTargets()); !slices.Equal(e, g) {
		t.Errorf("ids(m.PendingTargets()): expected %v, got %v", e, g)
	}

	removed := m.Confirm()

	if e, g := []string{"1", "5"}, ids(removed); !slices.Equal(e, g) {
		t.Fatalf("ids(removed): expected %v, got %v", e, g)
	}

	if e, g := []string{"2", "3", "4"}, ids(m.All()); !slices.Equal(e, g) {
		t.Errorf("ids(m.All()): expected %v, got %v", e, g)
	}

	if m.SelectMode() {
		t.Errorf("m.SelectMode(): expected false after bulk delete")
	}
}

func TestConfirmWithoutIntentIsNoop(t *testing.T) {
	m := newTestManager()

	if removed := m.Confirm(); removed != nil {
		t.Errorf("m.Confirm(): expected nil, got %v", removed)
	}

	if e, g := 5, m.Len(); e != g {
		t.Errorf("m.Len(): expected %d, got %d", e, g)
	}
}

func TestSeedResetsState(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.ToggleSelectAll()
	m.SetSearchTerm("martin")
	m.OpenDetailByID("1")
	m.RequestDeleteSelected()

	m.Seed([]person{{id: "9", name: "Zoé"}})

	if m.SelectMode() || m.SelectedCount() != 0 || m.Intent().Pending() || m.SearchTerm() != "" {
		t.Errorf("expected seed to reset every state")
	}

	if _, open := m.Detail(); open {
		t.Errorf("m.Detail(): expected closed")
	}

	if e, g := 1, m.Len(); e != g {
		t.Errorf("m.Len(): expected %d, got %d", e, g)
	}
}
