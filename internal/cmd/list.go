package cmd

import (
	"fmt"

	"github.com/padctl/padctl/pkg/macropad"
)

// ListCmd prints every known keypad configuration interface found on the
// host.
type ListCmd struct{}

func (c *ListCmd) Run(g *Globals) error {
	mgr, err := g.manager()
	if err != nil {
		return err
	}
	configs, err := g.deviceConfigs()
	if err != nil {
		return err
	}

	found, err := macropad.ListDevices(mgr, configs)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return macropad.ErrDeviceNotFound
	}

	fmt.Println("Available macro keypads:")
	for i, dev := range found {
		fmt.Printf("\n%d. %s %s\n", i+1, dev.Manufacturer, dev.Product)
		fmt.Printf("   VID:PID = %04X:%04X\n", dev.VendorID, dev.ProductID)
		fmt.Printf("   Protocol version: %d\n", dev.ProtocolVersion)
		fmt.Printf("   Path: %s\n", dev.Path)
	}
	return nil
}
