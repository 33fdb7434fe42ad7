package hid

import (
	"fmt"
	"time"

	"github.com/karalabe/usb"
)

// rawManager enumerates through libusb instead of the platform HID layer,
// for hosts where the hidraw node is claimed by another driver or missing.
//
// libusb paths carry no interface marker, so the interface number is
// appended in the Windows "mi_xx" form; the known-device path fragments then
// match the same way on both backends.
type rawManager struct{}

// NewRawManager returns the libusb-backed manager.
func NewRawManager() Manager { return &rawManager{} }

func rawPath(d usb.DeviceInfo) string {
	return fmt.Sprintf("%s&mi_%02x", d.Path, d.Interface)
}

func (m *rawManager) List() ([]Info, error) {
	devs, err := usb.EnumerateRaw(0, 0)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         rawPath(d),
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Product:      d.Product,
			Manufacturer: d.Manufacturer,
		})
	}
	return out, nil
}

func (m *rawManager) Open(info Info) (Device, error) {
	devs, err := usb.EnumerateRaw(info.VendorID, info.ProductID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	for _, d := range devs {
		if rawPath(d) != info.Path {
			continue
		}
		dev, err := d.Open()
		if err != nil {
			return nil, fmt.Errorf("usb open: %w", err)
		}
		return &rawDevice{dev: dev}, nil
	}
	return nil, fmt.Errorf("usb device %s not found", info.Path)
}

type rawDevice struct{ dev usb.Device }

func (d *rawDevice) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf := p
	if p[0] == 0 {
		// Report ID 0 is never transmitted on the wire.
		buf = p[1:]
	}
	n, err := d.dev.Write(buf)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		// Some platform drivers report success as a negative count. Normalize
		// here so callers never see the sentinel.
		n = len(buf)
	}
	return n + (len(p) - len(buf)), nil
}

func (d *rawDevice) ReadInputTimeout(p []byte, timeout time.Duration) (int, error) {
	return readWithTimeout(d.dev.Read, p, timeout)
}

func (d *rawDevice) Close() error { return d.dev.Close() }
