package store

import "sync"

// Memory is an in-process Repository. The Fail fields make the next
// corresponding operation return the given error.
type Memory struct {
	FailLoad  error
	FailSave  error
	FailClear error
	value     []byte
	Saves     int
	mu        sync.Mutex
}

// NewMemory returns an empty in-memory slot.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return nil, m.FailLoad
	}

	if m.value == nil {
		return nil, ErrNotFound
	}

	return append([]byte(nil), m.value...), nil
}

func (m *Memory) Save(value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}

	m.value = append([]byte(nil), value...)
	m.Saves++

	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailClear != nil {
		return m.FailClear
	}

	m.value = nil

	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Empty reports whether the slot holds nothing.
func (m *Memory) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.value == nil
}
