package macropad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []KeyStroke
	}{
		{
			name: "single key",
			in:   "A",
			want: []KeyStroke{{Key: KeyA}},
		},
		{
			name: "modifier plus key",
			in:   "LCTRL+A",
			want: []KeyStroke{{Key: KeyA, Modifiers: ModLCtrl}},
		},
		{
			name: "two keystrokes",
			in:   "LCTRL+A,ENTER",
			want: []KeyStroke{
				{Key: KeyA, Modifiers: ModLCtrl},
				{Key: KeyEnter},
			},
		},
		{
			name: "case insensitive with spaces",
			in:   "lctrl + lshift + f5, enter",
			want: []KeyStroke{
				{Key: KeyF5, Modifiers: ModLCtrl | ModLShift},
				{Key: KeyEnter},
			},
		},
		{
			name: "bare digit",
			in:   "7",
			want: []KeyStroke{{Key: Key7}},
		},
		{
			name: "modifiers only",
			in:   "LGUI",
			want: []KeyStroke{{Key: KeyNone, Modifiers: ModLGui}},
		},
		{
			name: "empty clears",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequence(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSequenceUnknownKey(t *testing.T) {
	_, err := ParseSequence("LCTRL+BOGUS")

	var unknown *UnknownIdentifierError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "key", unknown.Kind)
	assert.Equal(t, "BOGUS", unknown.Name)
}

func TestParseSequenceTwoKeysInOneStroke(t *testing.T) {
	_, err := ParseSequence("A+B")
	assert.Error(t, err)
}

func TestParseModifiers(t *testing.T) {
	mods, err := ParseModifiers("LCTRL+LSHIFT")
	require.NoError(t, err)
	assert.Equal(t, ModLCtrl|ModLShift, mods)

	mods, err = ParseModifiers("")
	require.NoError(t, err)
	assert.Equal(t, ModNone, mods)

	_, err = ParseModifiers("LCTRL+A")
	var unknown *UnknownIdentifierError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "modifier", unknown.Kind)
}
