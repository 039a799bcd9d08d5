// Package session keys conversation state by session id behind a small
// store abstraction, so the dialogue manager stays indifferent to where the
// state actually lives.
package session

import "sync"

// Slot names a query dimension the dialogue may ask a follow-up for. Campus
// and year always have defaults and are never awaited.
type Slot string

const (
	SlotNone       Slot = ""
	SlotUniversity Slot = "university"
	SlotDepartment Slot = "department"
	SlotProgram    Slot = "program"
)

// State is the slot memory carried between turns of one conversation. It is
// overwritten whenever a clarifying question goes out and cleared once a
// full resolution is produced.
type State struct {
	Awaiting   Slot
	University string
	Department string
	Program    string
	Campus     string
	Year       int
}

// Store holds one State per session id. Implementations must isolate
// sessions from each other; a session itself is a sequential conversation,
// so no per-session locking beyond the store's own is required.
type Store interface {
	Get(sessionID string) (State, bool)
	Set(sessionID string, st State)
	Clear(sessionID string)
}

// MemoryStore is the in-process Store used by default.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (m *MemoryStore) Get(sessionID string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[sessionID]
	return st, ok
}

func (m *MemoryStore) Set(sessionID string, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionID] = st
}

func (m *MemoryStore) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
}
