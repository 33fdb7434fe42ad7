package macropad

import (
	"errors"
	"fmt"
)

var (
	// ErrSequenceTooLong is returned when a key sequence exceeds the five
	// slots the firmware stores per assignment.
	ErrSequenceTooLong = errors.New("key sequence longer than 5 keys")

	// ErrModifierPosition is returned when a sequence requests modifiers on
	// any key after the first. The firmware only stores modifiers for the
	// first key, so accepting them would silently change meaning.
	ErrModifierPosition = errors.New("modifiers are only applied to the first key of a sequence")

	// ErrRightModifier is returned for mouse assignments that request
	// right-side modifiers, which the firmware cannot represent.
	ErrRightModifier = errors.New("mouse assignments support left-side modifiers only")

	// ErrPayloadTooLarge is returned when a report payload exceeds the fixed
	// report size.
	ErrPayloadTooLarge = errors.New("report payload exceeds device report size")

	// ErrDeviceNotFound is returned when no known keypad interface is present.
	ErrDeviceNotFound = errors.New("no compatible macro keypad found")

	// ErrUnsupportedProtocol is returned for devices that speak the extended
	// protocol, which this tool does not implement.
	ErrUnsupportedProtocol = errors.New("extended protocol devices are not supported")
)

// UnknownIdentifierError reports a name that is not part of one of the closed
// enumerations (targets, keys, media keys, mouse buttons, LED modes).
type UnknownIdentifierError struct {
	Kind string
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// PartialWriteError reports a configuration transaction that was interrupted
// by a transport failure. Written counts the reports that reached the device;
// if it is non-zero the device may hold a function assignment that was never
// committed to flash.
type PartialWriteError struct {
	Written int
	Total   int
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("wrote %d of %d reports: %v", e.Written, e.Total, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
