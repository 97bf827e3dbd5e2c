package collection

// OpenDetail shows the given record. The manager keeps the record itself,
// not its id.
func (m *Manager[T]) OpenDetail(record T) {
	m.detail = record
	m.hasDetail = true
}

// OpenDetailByID opens the detail view of the record with the given id. It
// returns false when no such record exists.
func (m *Manager[T]) OpenDetailByID(id string) bool {
	record, ok := m.Get(id)
	if !ok {
		return false
	}

	m.OpenDetail(record)

	return true
}

func (m *Manager[T]) CloseDetail() {
	var zero T
	m.detail = zero
	m.hasDetail = false
}

func (m *Manager[T]) Detail() (T, bool) {
	return m.detail, m.hasDetail
}
