package collection

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

type person struct {
	id   string
	name string
	team string
}

var personAccessors = Accessors[person]{
	ID:      func(p person) string { return p.id },
	Display: func(p person) string { return p.name },
	Search:  func(p person) []string { return []string{p.team} },
}

func newTestManager() *Manager[person] {
	return New(personAccessors, []person{
		{id: "1", name: "Alice Martin", team: "data"},
		{id: "2", name: "Bob Durand", team: "infra"},
		{id: "3", name: "Chloé Petit", team: "data"},
		{id: "4", name: "David Martin", team: "sales"},
		{id: "5", name: "Emma Roux", team: "infra"},
	})
}

func ids(records []person) []string {
	result := make([]string, 0, len(records))
	for _, r := range records {
		result = append(result, r.id)
	}
	return result
}

func TestNewDropsDuplicateIDs(t *testing.T) {
	m := New(personAccessors, []person{
		{id: "1", name: "first"},
		{id: "1", name: "duplicate"},
		{id: "2", name: "second"},
	})

	if e, g := 2, m.Len(); e != g {
		t.Fatalf("m.Len(): expected %d, got %d", e, g)
	}

	r, _ := m.Get("1")
	if e, g := "first", r.name; e != g {
		t.Errorf("r.name: expected %s, got %s", e, g)
	}
}

func TestFilter(t *testing.T) {
	m := newTestManager()

	type testCase struct {
		Term     string
		Expected []string
	}

	testCases := []testCase{
		{Term: "", Expected: []string{"1", "2", "3", "4", "5"}},
		{Term: "martin", Expected: []string{"1", "4"}},
		{Term: "MARTIN", Expected: []string{"1", "4"}},
		{Term: " martin", Expected: []string{"1", "4"}},
		{Term: "martin ", Expected: []string{}},
		{Term: " d", Expected: []string{"2"}},
		{Term: "   ", Expected: []string{}},
		{Term: "infra", Expected: []string{"2", "5"}},
		{Term: "chloé", Expected: []string{"3"}},
		{Term: "nobody", Expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.Term), func(t *testing.T) {
			m.SetSearchTerm(tc.Term)

			if e, g := tc.Expected, ids(m.Filtered()); !slices.Equal(e, g) {
				t.Errorf("ids(m.Filtered()): expected %v, got %v", e, g)
			}
		})
	}
}

func TestFilterMatchesExactlyContainingRecords(t *testing.T) {
	m := newTestManager()

	for _, term := range []string{"a", "o", "ar", "Du", "e", "x", "r"} {
		m.SetSearchTerm(term)

		filtered := m.Filtered()
		for _, r := range m.All() {
			contains := strings.Contains(strings.ToLower(r.name), strings.ToLower(term)) ||
				strings.Contains(strings.ToLower(r.team), strings.ToLower(term))

			if e, g := contains, slices.Contains(ids(filtered), r.id); e != g {
				t.Errorf("term %q, record %s: expected filtered=%v, got %v", term, r.id, e, g)
			}
		}
	}
}

func TestToggleSelectAllTwice(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.SetSearchTerm("data")

	m.ToggleSelectAll()

	if e, g := []string{"1", "3"}, m.Selected(); !slices.Equal(e, g) {
		t.Fatalf("m.Selected(): expected %v, got %v", e, g)
	}

	m.ToggleSelectAll()

	if e, g := []string{}, m.Selected(); !slices.Equal(e, g) {
		t.Errorf("m.Selected(): expected %v, got %v", e, g)
	}
}

func TestToggleSelectAllCompletesPartialSelection(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.SetSearchTerm("data")
	m.ToggleSelectOne("1")

	m.ToggleSelectAll()

	if e, g := []string{"1", "3"}, m.Selected(); !slices.Equal(e, g) {
		t.Fatalf("m.Selected(): expected %v, got %v", e, g)
	}

	m.ToggleSelectAll()

	if e, g := 0, m.SelectedCount(); e != g {
		t.Errorf("m.SelectedCount(): expected %d, got %d", e, g)
	}
}

func TestToggleSelectAllKeepsSelectionOutsideFilter(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()

	m.ToggleSelectOne("2")
	m.ToggleSelectOne("5")

	m.SetSearchTerm("martin")
	m.ToggleSelectAll()

	if e, g := []string{"1", "2", "4", "5"}, m.Selected(); !slices.Equal(e, g) {
		t.Fatalf("m.Selected(): expected %v, got %v", e, g)
	}

	m.ToggleSelectAll()

	if e, g := []string{"2", "5"}, m.Selected(); !slices.Equal(e, g) {
		t.Errorf("m.Selected(): expected %v, got %v", e, g)
	}

	m.SetSearchTerm("chloé")

	if !m.IsSelected("2") || !m.IsSelected("5") {
		t.Errorf("changing the filter should not unselect records")
	}
}

func TestSelectionRequiresSelectMode(t *testing.T) {
	m := newTestManager()

	m.ToggleSelectOne("1")
	m.ToggleSelectAll()

	if e, g := 0, m.SelectedCount(); e != g {
		t.Fatalf("m.SelectedCount(): expected %d, got %d", e, g)
	}

	m.EnterSelectMode()
	m.ToggleSelectOne("1")
	m.ToggleSelectOne("unknown")

	if e, g := []string{"1"}, m.Selected(); !slices.Equal(e, g) {
		t.Fatalf("m.Selected(): expected %v, got %v", e, g)
	}

	m.ToggleSelectOne("1")

	if e, g := 0, m.SelectedCount(); e != g {
		t.Errorf("m.SelectedCount(): expected %d, got %d", e, g)
	}
}

func TestExitSelectModeClearsSelection(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()
	m.ToggleSelectAll()

	m.ExitSelectMode()

	if m.SelectMode() {
		t.Errorf("m.SelectMode(): expected false")
	}

	if e, g := 0, m.SelectedCount(); e != g {
		t.Errorf("m.SelectedCount(): expected %d, got %d", e, g)
	}

	m.EnterSelectMode()

	if e, g := 0, m.SelectedCount(); e != g {
		t.Errorf("m.SelectedCount(): expected %d, got %d", e, g)
	}
}

func TestAllFilteredSelected(t *testing.T) {
	m := newTestManager()
	m.EnterSelectMode()

	m.SetSearchTerm("nobody")
	if m.AllFilteredSelected() {
		t.Errorf("m.AllFilteredSelected(): expected false on empty filter")
	}

	m.SetSearchTerm("infra")
	m.ToggleSelectOne("2")
	if m.AllFilteredSelected() {
		t.Errorf("m.AllFilteredSelected(): expected false")
	}

	m.ToggleSelectOne("5")
	if !m.AllFilteredSelected() {
		t.Errorf("m.AllFilteredSelected(): expected true")
	}
}

func TestMatchingKeepsSearchTerm(t *testing.T) {
	m := newTestManager()
	m.SetSearchTerm("infra")

	if e, g := []string{"1", "3"}, ids(m.Matching("data")); !slices.Equal(e, g) {
		t.Errorf("ids(m.Matching()): expected %v, got %v", e, g)
	}

	if e, g := "infra", m.SearchTerm(); e != g {
		t.Errorf("m.SearchTerm(): expected %v, got %v", e, g)
	}
}
