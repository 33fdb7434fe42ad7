package macropad

import (
	"fmt"
	"strings"
)

// MaxSequenceKeys is the number of key slots the firmware stores per
// assignment.
const MaxSequenceKeys = 5

// KeyStroke is a single keystroke in a sequence: one key plus the modifiers
// held with it.
type KeyStroke struct {
	Key       KeyCode
	Modifiers Modifier
}

// ParseSequence parses a sequence string like "LCTRL+LSHIFT+F5,ENTER" into
// keystrokes. Commas separate keystrokes; within a keystroke, "+" joins any
// number of modifiers with at most one key. A keystroke of modifiers only is
// allowed (the key is None). An empty string yields an empty sequence, which
// clears the assignment.
func ParseSequence(s string) ([]KeyStroke, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var seq []KeyStroke
	for _, stroke := range strings.Split(strings.ToUpper(s), ",") {
		ks := KeyStroke{Key: KeyNone}
		haveKey := false

		for _, part := range strings.Split(stroke, "+") {
			part = strings.TrimSpace(part)
			if part == "" {
				return nil, &UnknownIdentifierError{Kind: "key", Name: part}
			}

			if mod, ok := modifierNames[part]; ok {
				ks.Modifiers |= mod
				continue
			}
			key, ok := keyNames[part]
			if !ok {
				return nil, &UnknownIdentifierError{Kind: "key", Name: part}
			}
			if haveKey {
				return nil, fmt.Errorf("keystroke %q has more than one key", stroke)
			}
			ks.Key = key
			haveKey = true
		}

		seq = append(seq, ks)
	}

	return seq, nil
}

// ParseModifiers parses a "+"-joined modifier list like "LCTRL+LSHIFT".
func ParseModifiers(s string) (Modifier, error) {
	if strings.TrimSpace(s) == "" {
		return ModNone, nil
	}

	mods := ModNone
	for _, part := range strings.Split(strings.ToUpper(s), "+") {
		part = strings.TrimSpace(part)
		mod, ok := modifierNames[part]
		if !ok {
			return ModNone, &UnknownIdentifierError{Kind: "modifier", Name: part}
		}
		mods |= mod
	}
	return mods, nil
}
