// Package config loads user overrides for the known-device table.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/padctl/padctl/pkg/macropad"
)

// Device is one keypad interface entry. An unset protocol defaults to 0
// (legacy), the same assumption made for unknown VID/PID pairs.
type Device struct {
	VendorID     uint16 `toml:"vendor_id"`
	ProductID    uint16 `toml:"product_id"`
	PathFragment string `toml:"path_fragment"`
	Protocol     int    `toml:"protocol"`
}

// Config is the padctl configuration file.
type Config struct {
	Devices []Device `toml:"device"`
}

// Load reads a TOML device table:
//
//	[[device]]
//	vendor_id = 0x1189
//	product_id = 0x8890
//	path_fragment = "mi_01"
//	protocol = 0
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// DeviceConfigs converts the file entries for use by discovery. An empty
// path fragment matches the "mi_" marker every configuration interface
// carries.
func (c *Config) DeviceConfigs() []macropad.DeviceConfig {
	out := make([]macropad.DeviceConfig, 0, len(c.Devices))
	for _, d := range c.Devices {
		frag := d.PathFragment
		if frag == "" {
			frag = "mi_"
		}
		out = append(out, macropad.DeviceConfig{
			VendorID:        d.VendorID,
			ProductID:       d.ProductID,
			PathFragment:    frag,
			ProtocolVersion: d.Protocol,
		})
	}
	return out
}
