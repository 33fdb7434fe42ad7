// Package macropad encodes configuration for 3-button 1-knob USB macro
// keypads and writes it to the device over HID output reports.
package macropad

import "strings"

// Target identifies one of the six physical inputs of a 3-button 1-knob pad.
type Target byte

const (
	Button1   Target = 1
	Button2   Target = 2
	Button3   Target = 3
	KnobCW    Target = 4
	KnobCCW   Target = 5
	KnobPress Target = 6
)

var targetNames = map[string]Target{
	"BUTTON_1":   Button1,
	"BUTTON_2":   Button2,
	"BUTTON_3":   Button3,
	"KNOB_CW":    KnobCW,
	"KNOB_CCW":   KnobCCW,
	"KNOB_PRESS": KnobPress,
}

func (t Target) String() string {
	for name, v := range targetNames {
		if v == t {
			return strings.ToLower(name)
		}
	}
	return "unknown"
}

// ParseTarget resolves an action-target name like "button_1" or "knob_cw".
func ParseTarget(name string) (Target, error) {
	t, ok := targetNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnknownIdentifierError{Kind: "action target", Name: name}
	}
	return t, nil
}

// MediaKey is a consumer-control usage as stored by the firmware. The legacy
// protocol only persists the low byte; the extended protocol keeps both.
type MediaKey uint16

const (
	MediaPlayPause  MediaKey = 0xE8
	MediaStop       MediaKey = 0xE9
	MediaNextTrack  MediaKey = 0xEB
	MediaPrevTrack  MediaKey = 0xEC
	MediaVolumeUp   MediaKey = 0xEF
	MediaVolumeDown MediaKey = 0xF0
	MediaMute       MediaKey = 0xF1
)

var mediaNames = map[string]MediaKey{
	"PLAY_PAUSE":  MediaPlayPause,
	"STOP":        MediaStop,
	"NEXT_TRACK":  MediaNextTrack,
	"PREV_TRACK":  MediaPrevTrack,
	"VOLUME_UP":   MediaVolumeUp,
	"VOLUME_DOWN": MediaVolumeDown,
	"MUTE":        MediaMute,
}

// ParseMediaKey resolves a media-key name like "play_pause".
func ParseMediaKey(name string) (MediaKey, error) {
	m, ok := mediaNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnknownIdentifierError{Kind: "media key", Name: name}
	}
	return m, nil
}

// MouseButton is a click or scroll code. Click and scroll codes land in
// different payload slots of the function report.
type MouseButton byte

const (
	MouseLeft       MouseButton = 0x01
	MouseRight      MouseButton = 0x02
	MouseMiddle     MouseButton = 0x04
	MouseScrollUp   MouseButton = 0x10
	MouseScrollDown MouseButton = 0x20
)

var mouseNames = map[string]MouseButton{
	"LEFT":        MouseLeft,
	"RIGHT":       MouseRight,
	"MIDDLE":      MouseMiddle,
	"SCROLL_UP":   MouseScrollUp,
	"SCROLL_DOWN": MouseScrollDown,
}

// ParseMouseButton resolves a mouse button or scroll direction by name.
func ParseMouseButton(name string) (MouseButton, error) {
	b, ok := mouseNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnknownIdentifierError{Kind: "mouse button", Name: name}
	}
	return b, nil
}

// IsScroll reports whether the code belongs to the scroll slot of the
// function report rather than the click slot.
func (b MouseButton) IsScroll() bool {
	return b == MouseScrollUp || b == MouseScrollDown
}

// LedMode is the global backlight mode. The 3-button 1-knob firmware has no
// color channel.
type LedMode byte

const (
	LedOff     LedMode = 0
	LedOn      LedMode = 1
	LedBreathe LedMode = 2
)

var ledNames = map[string]LedMode{
	"OFF":     LedOff,
	"ON":      LedOn,
	"BREATHE": LedBreathe,
}

// ParseLedMode resolves an LED mode name.
func ParseLedMode(name string) (LedMode, error) {
	m, ok := ledNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnknownIdentifierError{Kind: "LED mode", Name: name}
	}
	return m, nil
}
