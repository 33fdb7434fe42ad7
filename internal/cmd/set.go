package cmd

import (
	"fmt"

	"github.com/padctl/padctl/pkg/macropad"
)

// printOutcome tells the user whether the write was acknowledged. The legacy
// firmware offers no acknowledgement report, so "unverified" is the normal
// outcome on real hardware.
func printOutcome(what string, res macropad.Result) {
	if res.Verified {
		fmt.Printf("Configured %s\n", what)
		return
	}
	fmt.Printf("Configured %s (%d reports written, not acknowledged by device)\n", what, res.ReportsWritten)
}

// SetKeyCmd assigns a keyboard sequence to a button or knob action.
type SetKeyCmd struct {
	Action string `arg:"" help:"button_1..button_3, knob_cw, knob_ccw or knob_press."`
	Keys   string `arg:"" help:"Key sequence, e.g. \"LCTRL+A,ENTER\". Empty clears the assignment."`
}

func (c *SetKeyCmd) Run(g *Globals) error {
	target, err := macropad.ParseTarget(c.Action)
	if err != nil {
		return err
	}
	seq, err := macropad.ParseSequence(c.Keys)
	if err != nil {
		return err
	}

	dev, err := g.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	res, err := dev.SetKeySequence(target, seq, 0)
	if err != nil {
		return err
	}
	printOutcome(target.String(), res)
	return nil
}

// SetMediaCmd assigns a media key to a button or knob action.
type SetMediaCmd struct {
	Action string `arg:"" help:"button_1..button_3, knob_cw, knob_ccw or knob_press."`
	Media  string `arg:"" help:"play_pause, stop, next_track, prev_track, volume_up, volume_down or mute."`
}

func (c *SetMediaCmd) Run(g *Globals) error {
	target, err := macropad.ParseTarget(c.Action)
	if err != nil {
		return err
	}
	key, err := macropad.ParseMediaKey(c.Media)
	if err != nil {
		return err
	}

	dev, err := g.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	res, err := dev.SetMediaKey(target, key, 0)
	if err != nil {
		return err
	}
	printOutcome(target.String(), res)
	return nil
}

// SetMouseCmd assigns a mouse button or scroll direction to a button or knob
// action.
type SetMouseCmd struct {
	Action    string `arg:"" help:"button_1..button_3, knob_cw, knob_ccw or knob_press."`
	Button    string `arg:"" help:"left, right, middle, scroll_up or scroll_down."`
	Modifiers string `short:"m" help:"Modifier keys held with the click, e.g. \"LCTRL+LSHIFT\". Left-side only."`
}

func (c *SetMouseCmd) Run(g *Globals) error {
	target, err := macropad.ParseTarget(c.Action)
	if err != nil {
		return err
	}
	button, err := macropad.ParseMouseButton(c.Button)
	if err != nil {
		return err
	}
	mods, err := macropad.ParseModifiers(c.Modifiers)
	if err != nil {
		return err
	}

	dev, err := g.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	res, err := dev.SetMouseButton(target, button, mods, 0)
	if err != nil {
		return err
	}
	printOutcome(target.String(), res)
	return nil
}

// SetLedCmd sets the global backlight mode.
type SetLedCmd struct {
	Mode string `arg:"" help:"off, on or breathe."`
}

func (c *SetLedCmd) Run(g *Globals) error {
	mode, err := macropad.ParseLedMode(c.Mode)
	if err != nil {
		return err
	}

	dev, err := g.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	res, err := dev.SetLEDMode(mode, 0)
	if err != nil {
		return err
	}
	printOutcome("LED mode "+c.Mode, res)
	return nil
}
