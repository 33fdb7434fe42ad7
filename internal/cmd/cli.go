// Package cmd holds the kong command tree for padctl.
package cmd

import (
	"github.com/padctl/padctl/internal/config"
	"github.com/padctl/padctl/internal/hid"
	"github.com/padctl/padctl/pkg/macropad"
)

// Globals are the flags shared by every subcommand.
type Globals struct {
	Verbose bool   `short:"v" help:"Enable verbose logging."`
	Config  string `help:"TOML file with additional known devices." type:"path"`
	Raw     bool   `help:"Use the raw libusb transport instead of the platform HID layer."`
}

// CLI is the root command.
type CLI struct {
	Globals

	List     ListCmd     `cmd:"" help:"List available macro keypads."`
	SetKey   SetKeyCmd   `cmd:"" name:"set-key" help:"Assign a key sequence to a button or knob action."`
	SetMedia SetMediaCmd `cmd:"" name:"set-media" help:"Assign a media key to a button or knob action."`
	SetMouse SetMouseCmd `cmd:"" name:"set-mouse" help:"Assign a mouse button or scroll to a button or knob action."`
	SetLed   SetLedCmd   `cmd:"" name:"set-led" help:"Set the backlight mode."`
}

func (g *Globals) manager() (hid.Manager, error) {
	if g.Raw {
		return hid.NewRawManager(), nil
	}
	return hid.NewManager()
}

func (g *Globals) deviceConfigs() ([]macropad.DeviceConfig, error) {
	configs := macropad.KnownDevices
	if g.Config != "" {
		cfg, err := config.Load(g.Config)
		if err != nil {
			return nil, err
		}
		// User entries come first so they take precedence.
		configs = append(cfg.DeviceConfigs(), configs...)
	}
	return configs, nil
}

func (g *Globals) open() (*macropad.Device, error) {
	mgr, err := g.manager()
	if err != nil {
		return nil, err
	}
	configs, err := g.deviceConfigs()
	if err != nil {
		return nil, err
	}
	return macropad.Open(mgr, configs)
}
