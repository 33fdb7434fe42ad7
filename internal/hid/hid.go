package hid

import (
	"errors"
	"time"
)

// Device represents an opened HID device capable of output-report writes.
// The buffer passed to Write carries the report ID at byte 0; backends decide
// whether that byte goes on the wire (report ID 0 never does).
type Device interface {
	Write([]byte) (int, error)
	Close() error
}

// InputReader is implemented by devices that can poll for an input report
// with a bounded wait. Callers treat it as best effort; a timeout is not an
// error condition worth aborting over.
type InputReader interface {
	ReadInputTimeout(p []byte, timeout time.Duration) (int, error)
}

// ErrReadTimeout is returned by ReadInputTimeout when no input report arrived
// within the deadline.
var ErrReadTimeout = errors.New("hid: read timed out")

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}

// readWithTimeout runs a blocking read and abandons it at the deadline. The
// abandoned goroutine holds only the read call; the process is a short-lived
// CLI and exits shortly after.
func readWithTimeout(read func([]byte) (int, error), p []byte, timeout time.Duration) (int, error) {
	type result struct {
		n   int
		err error
	}

	buf := make([]byte, len(p))
	ch := make(chan result, 1)
	go func() {
		n, err := read(buf)
		ch <- result{n, err}
	}()

	select {
	case res := <-ch:
		copy(p, buf)
		return res.n, res.err
	case <-time.After(timeout):
		return 0, ErrReadTimeout
	}
}
