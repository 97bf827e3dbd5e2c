// Package collection implements the list state shared by every admin page:
// a record list seeded once, a live search filter, a selection set scoped
// to select mode, a two-step delete gate and an optional detail view.
//
// A Manager is not safe for concurrent use. Callers serialize access.
package collection

import (
	"slices"
	"strings"
)

// Accessors tells a Manager how to read the identity and the searchable
// text of a record.
type Accessors[T any] struct {
	// ID returns the stable unique identifier of the record
	ID func(T) string
	// Display returns the display name used for filtering
	Display func(T) string
	// Search returns additional searchable fields, if any
	Search func(T) []string
}

type Manager[T any] struct {
	accessors Accessors[T]

	records    []T
	searchTerm string

	selectMode bool
	selected   map[string]struct{}

	intent Intent

	detail    T
	hasDetail bool
}

// New creates a manager seeded with the given records. Records sharing an
// already seen id are dropped.
func New[T any](accessors Accessors[T], seed []T) *Manager[T] {
	m := &Manager[T]{
		accessors: accessors,
		selected:  map[string]struct{}{},
	}

	m.Seed(seed)

	return m
}

// Seed replaces the working list and resets every derived state.
func (m *Manager[T]) Seed(seed []T) {
	records := make([]T, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))

	for _, r := range seed {
		id := m.accessors.ID(r)
		if _, exists := seen[id]; exists {
			continue
		}

		seen[id] = struct{}{}
		records = append(records, r)
	}

	var zero T

	m.records = records
	m.searchTerm = ""
	m.selectMode = false
	m.selected = map[string]struct{}{}
	m.intent = Intent{}
	m.detail = zero
	m.hasDetail = false
}

// All returns a copy of the working list.
func (m *Manager[T]) All() []T {
	return slices.Clone(m.records)
}

func (m *Manager[T]) Len() int {
	return len(m.records)
}

// Get returns the record with the given id.
func (m *Manager[T]) Get(id string) (T, bool) {
	idx := m.indexOf(id)
	if idx == -1 {
		var zero T
		return zero, false
	}

	return m.records[idx], true
}

func (m *Manager[T]) Has(id string) bool {
	return m.indexOf(id) != -1
}

func (m *Manager[T]) SearchTerm() string {
	return m.searchTerm
}

// SetSearchTerm updates the filter. Matching is a case insensitive substring
// match on the display field and on the extra search fields. The term is
// used as is: an empty term matches every record.
func (m *Manager[T]) SetSearchTerm(text string) {
	m.searchTerm = text
}

// Filtered returns the records matching the current search term, in list
// order.
func (m *Manager[T]) Filtered() []T {
	return m.Matching(m.searchTerm)
}

// Matching returns the records matching the given term, in list order,
// without changing the current search term.
func (m *Manager[T]) Matching(term string) []T {
	if term == "" {
		return m.All()
	}

	needle := strings.ToLower(term)
	filtered := make([]T, 0, len(m.records))

	for _, r := range m.records {
		if m.matches(r, needle) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

func (m *Manager[T]) matches(r T, needle string) bool {
	if strings.Contains(strings.ToLower(m.accessors.Display(r)), needle) {
		return true
	}

	if m.accessors.Search == nil {
		return false
	}

	for _, field := range m.accessors.Search(r) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func (m *Manager[T]) filteredIDs() []string {
	filtered := m.Filtered()
	ids := make([]string, 0, len(filtered))
	for _, r := range filtered {
		ids = append(ids, m.accessors.ID(r))
	}
	return ids
}

func (m *Manager[T]) indexOf(id string) int {
	return slices.IndexFunc(m.records, func(r T) bool {
		return m.accessors.ID(r) == id
	})
}

// remove deletes the records whose ids are in the given set and returns
// them.
func (m *Manager[T]) remove(ids map[string]struct{}) []T {
	removed := make([]T, 0, len(ids))

	m.records = slices.DeleteFunc(m.records, func(r T) bool {
		if _, ok := ids[m.accessors.ID(r)]; ok {
			removed = append(removed, r)
			return true
		}
		return false
	})

	return removed
}
