package collection

func (m *Manager[T]) SelectMode() bool {
	return m.selectMode
}

func (m *Manager[T]) EnterSelectMode() {
	m.selectMode = true
}

// ExitSelectMode leaves select mode. The selection never survives it.
func (m *Manager[T]) ExitSelectMode() {
	m.selectMode = false
	m.clearSelection()
}

// ToggleSelectAll selects every filtered record, or, when all of them are
// already selected, unselects exactly the filtered records. Selected ids
// outside of the current filter are left untouched in both cases.
func (m *Manager[T]) ToggleSelectAll() {
	if !m.selectMode {
		return
	}

	ids := m.filteredIDs()

	if m.allSelected(ids) {
		for _, id := range ids {
			delete(m.selected, id)
		}
		return
	}

	for _, id := range ids {
		m.selected[id] = struct{}{}
	}
}

// ToggleSelectOne flips the selection of the given record.
func (m *Manager[T]) ToggleSelectOne(id string) {
	if !m.selectMode || !m.Has(id) {
		return
	}

	if _, selected := m.selected[id]; selected {
		delete(m.selected, id)
		return
	}

	m.selected[id] = struct{}{}
}

func (m *Manager[T]) IsSelected(id string) bool {
	_, selected := m.selected[id]
	return selected
}

// Selected returns the selected ids, in list order.
func (m *Manager[T]) Selected() []string {
	ids := make([]string, 0, len(m.selected))
	for _, r := range m.records {
		id := m.accessors.ID(r)
		if _, selected := m.selected[id]; selected {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Manager[T]) SelectedCount() int {
	return len(m.selected)
}

// AllFilteredSelected reports whether every record of the current filter is
// selected. It is false when the filter matches nothing.
func (m *Manager[T]) AllFilteredSelected() bool {
	ids := m.filteredIDs()
	if len(ids) == 0 {
		return false
	}
	return m.allSelected(ids)
}

func (m *Manager[T]) allSelected(ids []string) bool {
	for _, id := range ids {
		if _, selected := m.selected[id]; !selected {
			return false
		}
	}
	return true
}

func (m *Manager[T]) clearSelection() {
	clear(m.selected)
}
