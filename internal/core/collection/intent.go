package collection

type IntentMode int

const (
	IntentNone IntentMode = iota
	IntentSingle
	IntentBulk
)

func (m IntentMode) String() string {
	switch m {
	case IntentSingle:
		return "single"
	case IntentBulk:
		return "bulk"
	default:
		return "none"
	}
}

// Intent is a pending destructive action awaiting confirmation.
type Intent struct {
	Mode     IntentMode
	TargetID string
}

func (i Intent) Pending() bool {
	return i.Mode != IntentNone
}

func (m *Manager[T]) Intent() Intent {
	return m.intent
}

// RequestDelete stores the intent to delete a single record.
func (m *Manager[T]) RequestDelete(id string) {
	if !m.Has(id) {
		return
	}

	m.intent = Intent{Mode: IntentSingle, TargetID: id}
}

// RequestDeleteSelected stores the intent to delete the selection. The
// selection is read when the intent is confirmed, not now.
func (m *Manager[T]) RequestDeleteSelected() {
	if len(m.selected) == 0 {
		return
	}

	m.intent = Intent{Mode: IntentBulk}
}

// Confirm applies the pending intent and returns the removed records.
func (m *Manager[T]) Confirm() []T {
	if !m.intent.Pending() {
		return nil
	}

	ids := map[string]struct{}{}

	switch m.intent.Mode {
	case IntentSingle:
		ids[m.intent.TargetID] = struct{}{}
	case IntentBulk:
		for id := range m.selected {
			ids[id] = struct{}{}
		}
	}

	removed := m.remove(ids)

	if m.hasDetail {
		if _, deleted := ids[m.accessors.ID(m.detail)]; deleted {
			m.CloseDetail()
		}
	}

	m.clearSelection()
	m.selectMode = false
	m.intent = Intent{}

	return removed
}

// Cancel discards the pending intent. Neither the list nor the selection
// change.
func (m *Manager[T]) Cancel() {
	m.intent = Intent{}
}

// PendingTargets returns the records the pending intent would remove if
// confirmed now.
func (m *Manager[T]) PendingTargets() []T {
	switch m.intent.Mode {
	case IntentSingle:
		if r, ok := m.Get(m.intent.TargetID); ok {
			return []T{r}
		}
	case IntentBulk:
		targets := make([]T, 0, len(m.selected))
		for _, id := range m.Selected() {
			if r, ok := m.Get(id); ok {
				targets = append(targets, r)
			}
		}
		return targets
	}

	return nil
}
