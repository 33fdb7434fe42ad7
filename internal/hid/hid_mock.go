package hid

import (
	"errors"
	"time"
)

// MockDevice records written report buffers and replays queued input reports.
// FailOn, when non-zero, makes the nth write (1-based) return an error.
type MockDevice struct {
	Written [][]byte
	FailOn  int

	inputs [][]byte
	closed bool
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (m *MockDevice) Write(p []byte) (int, error) {
	if m.closed {
		return 0, errors.New("mock: device closed")
	}
	if m.FailOn != 0 && len(m.Written)+1 == m.FailOn {
		return 0, errors.New("mock: write failed")
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	m.Written = append(m.Written, buf)
	return len(p), nil
}

// QueueInput schedules an input report to be returned by the next
// ReadInputTimeout call.
func (m *MockDevice) QueueInput(p []byte) {
	buf := make([]byte, len(p))
	copy(buf, p)
	m.inputs = append(m.inputs, buf)
}

func (m *MockDevice) ReadInputTimeout(p []byte, _ time.Duration) (int, error) {
	if len(m.inputs) == 0 {
		return 0, ErrReadTimeout
	}
	next := m.inputs[0]
	m.inputs = m.inputs[1:]
	return copy(p, next), nil
}

func (m *MockDevice) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockDevice) Closed() bool { return m.closed }
