package macropad

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/padctl/padctl/internal/hid"
)

// DeviceConfig describes one known keypad configuration interface. The
// keypads expose several HID interfaces; only the one whose platform path
// contains PathFragment accepts configuration reports.
type DeviceConfig struct {
	VendorID        uint16
	ProductID       uint16
	PathFragment    string // matched case-insensitively against the interface path
	ProtocolVersion int
}

// KnownDevices lists the keypad interfaces this tool understands.
var KnownDevices = []DeviceConfig{
	{VendorID: 0x1189, ProductID: 0x8860, PathFragment: "MI_01", ProtocolVersion: 1},
	{VendorID: 0x1189, ProductID: 0x8890, PathFragment: "MI_01", ProtocolVersion: 0}, // 3 buttons + 1 knob
	{VendorID: 0x1189, ProductID: 0x8830, PathFragment: "MI_00", ProtocolVersion: 1},
}

// FoundDevice pairs an enumerated interface with its protocol version.
type FoundDevice struct {
	hid.Info
	ProtocolVersion int
}

func matches(info hid.Info, cfg DeviceConfig) bool {
	return info.VendorID == cfg.VendorID &&
		info.ProductID == cfg.ProductID &&
		strings.Contains(strings.ToUpper(info.Path), strings.ToUpper(cfg.PathFragment))
}

// ListDevices enumerates every configuration interface matching one of the
// given device configs.
func ListDevices(mgr hid.Manager, configs []DeviceConfig) ([]FoundDevice, error) {
	infos, err := mgr.List()
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}

	var found []FoundDevice
	for _, cfg := range configs {
		for _, info := range infos {
			if matches(info, cfg) {
				found = append(found, FoundDevice{Info: info, ProtocolVersion: cfg.ProtocolVersion})
			}
		}
	}
	return found, nil
}

// verifyTimeout bounds the post-commit read-back.
const verifyTimeout = 250 * time.Millisecond

// Device is the open keypad: an encoder paired with a transport. All protocol
// knowledge lives in the encoder; Device only sequences writes.
type Device struct {
	dev   hid.Device
	proto LegacyProtocol
}

// Open connects to the first usable keypad interface. Extended-protocol
// (version 1) interfaces are recognized but not supported.
func Open(mgr hid.Manager, configs []DeviceConfig) (*Device, error) {
	found, err := ListDevices(mgr, configs)
	if err != nil {
		return nil, err
	}

	extendedSeen := false
	var lastErr error
	for _, f := range found {
		if f.ProtocolVersion != 0 {
			slog.Debug("skipping extended protocol interface",
				slog.String("path", f.Path),
				slog.Int("protocol", f.ProtocolVersion))
			extendedSeen = true
			continue
		}

		dev, err := mgr.Open(f.Info)
		if err != nil {
			slog.Warn("failed to open device", slog.String("path", f.Path), slog.Any("error", err))
			lastErr = err
			continue
		}

		slog.Info("connected",
			slog.String("manufacturer", f.Manufacturer),
			slog.String("product", f.Product),
			slog.String("id", fmt.Sprintf("%04X:%04X", f.VendorID, f.ProductID)))
		return &Device{dev: dev, proto: LegacyProtocol{ReportID: 0}}, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	if extendedSeen {
		return nil, ErrUnsupportedProtocol
	}
	return nil, ErrDeviceNotFound
}

// NewDevice wraps an already-open transport, mainly for tests.
func NewDevice(dev hid.Device, proto LegacyProtocol) *Device {
	return &Device{dev: dev, proto: proto}
}

// Close releases the device handle.
func (d *Device) Close() error {
	return d.dev.Close()
}

// Result reports the outcome of one configuration transaction. Verified is
// true only when the device acknowledged the flash commit; transports without
// input reports leave it false, which means "bytes sent" rather than
// "firmware accepted".
type Result struct {
	ReportsWritten int
	Verified       bool
}

func (d *Device) send(reports []Report) (Result, error) {
	var res Result
	for i, r := range reports {
		slog.Debug("sending report", slog.String("report", r.String()))
		if _, err := d.dev.Write(r.Bytes()); err != nil {
			return res, &PartialWriteError{Written: i, Total: len(reports), Err: err}
		}
		res.ReportsWritten++
	}
	res.Verified = d.verifyCommit(reports[len(reports)-1])
	return res, nil
}

// verifyCommit attempts a bounded read-back after the flash commit. The
// firmware documents no acknowledgement report; one that echoes the flash
// opcode counts as confirmation, anything else leaves the transaction
// unverified.
func (d *Device) verifyCommit(commit Report) bool {
	reader, ok := d.dev.(hid.InputReader)
	if !ok {
		return false
	}

	buf := make([]byte, ReportDataSize)
	n, err := reader.ReadInputTimeout(buf, verifyTimeout)
	if err != nil || n == 0 {
		slog.Debug("no commit acknowledgement", slog.Any("error", err))
		return false
	}
	return buf[0] == commit.data[0]
}

// SetKeySequence assigns a keyboard sequence to a button or knob action.
func (d *Device) SetKeySequence(target Target, seq []KeyStroke, layer byte) (Result, error) {
	reports, err := d.proto.KeyReports(target, layer, seq)
	if err != nil {
		return Result{}, err
	}
	res, err := d.send(reports)
	if err != nil {
		return res, err
	}
	slog.Info("configured key sequence", slog.String("target", target.String()), slog.Int("keys", len(seq)))
	return res, nil
}

// SetMediaKey assigns a media key to a button or knob action.
func (d *Device) SetMediaKey(target Target, key MediaKey, layer byte) (Result, error) {
	reports, err := d.proto.MediaReports(target, layer, key)
	if err != nil {
		return Result{}, err
	}
	res, err := d.send(reports)
	if err != nil {
		return res, err
	}
	slog.Info("configured media key", slog.String("target", target.String()))
	return res, nil
}

// SetMouseButton assigns a mouse click or scroll to a button or knob action.
func (d *Device) SetMouseButton(target Target, button MouseButton, mods Modifier, layer byte) (Result, error) {
	reports, err := d.proto.MouseReports(target, layer, button, mods)
	if err != nil {
		return Result{}, err
	}
	res, err := d.send(reports)
	if err != nil {
		return res, err
	}
	slog.Info("configured mouse button", slog.String("target", target.String()))
	return res, nil
}

// SetLEDMode sets the global backlight mode.
func (d *Device) SetLEDMode(mode LedMode, layer byte) (Result, error) {
	reports, err := d.proto.LedReports(layer, mode)
	if err != nil {
		return Result{}, err
	}
	res, err := d.send(reports)
	if err != nil {
		return res, err
	}
	slog.Info("set LED mode", slog.Int("mode", int(mode)))
	return res, nil
}
