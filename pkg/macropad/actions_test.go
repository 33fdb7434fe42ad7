package macropad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"button_1", Button1},
		{"button_2", Button2},
		{"button_3", Button3},
		{"knob_cw", KnobCW},
		{"knob_ccw", KnobCCW},
		{"KNOB_PRESS", KnobPress},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseTargetUnknown(t *testing.T) {
	_, err := ParseTarget("button_4")

	var unknown *UnknownIdentifierError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "action target", unknown.Kind)
}

func TestParseMediaKey(t *testing.T) {
	got, err := ParseMediaKey("volume_up")
	require.NoError(t, err)
	assert.Equal(t, MediaVolumeUp, got)

	_, err = ParseMediaKey("bass_boost")
	assert.Error(t, err)
}

func TestParseMouseButton(t *testing.T) {
	got, err := ParseMouseButton("scroll_down")
	require.NoError(t, err)
	assert.Equal(t, MouseScrollDown, got)
	assert.True(t, got.IsScroll())

	got, err = ParseMouseButton("middle")
	require.NoError(t, err)
	assert.False(t, got.IsScroll())

	_, err = ParseMouseButton("back")
	assert.Error(t, err)
}

func TestParseLedMode(t *testing.T) {
	got, err := ParseLedMode("breathe")
	require.NoError(t, err)
	assert.Equal(t, LedBreathe, got)

	_, err = ParseLedMode("rainbow")
	assert.Error(t, err)
}
