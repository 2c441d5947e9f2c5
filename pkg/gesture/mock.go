package gesture

import "sync"

// MockSource replays a scripted sequence of signals, one per Sample call.
// After the script runs out it keeps returning the last entry, so tests
// can hold a gesture for as long as they like.
type MockSource struct {
	mu     sync.Mutex
	script []Signal
	pos    int
}

// NewMockSource creates a mock source from a script of signals.
func NewMockSource(script ...Signal) *MockSource {
	if len(script) == 0 {
		script = []Signal{Absent}
	}
	return &MockSource{script: script}
}

// Sample returns the next scripted signal.
func (m *MockSource) Sample() Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	sig := m.script[m.pos]
	if m.pos < len(m.script)-1 {
		m.pos++
	}
	return sig
}

// Set replaces the script and rewinds, for mid-test gesture changes.
func (m *MockSource) Set(script ...Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(script) == 0 {
		script = []Signal{Absent}
	}
	m.script = script
	m.pos = 0
}

// Hold is a convenience for a source stuck on a single signal.
func Hold(distance float64, present bool) *MockSource {
	return NewMockSource(Signal{Distance: distance, Present: present})
}
