package macropad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padctl/padctl/internal/hid"
)

// fakeManager serves a fixed device list and opens mock devices.
type fakeManager struct {
	infos   []hid.Info
	dev     *hid.MockDevice
	openErr error
}

func (m *fakeManager) List() ([]hid.Info, error) { return m.infos, nil }

func (m *fakeManager) Open(hid.Info) (hid.Device, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return m.dev, nil
}

func padInfo(vid, pid uint16, path string) hid.Info {
	return hid.Info{
		Path:         path,
		VendorID:     vid,
		ProductID:    pid,
		Product:      "Macro Keyboard",
		Manufacturer: "rwts",
	}
}

func TestDeviceWritesTransactionInOrder(t *testing.T) {
	mock := hid.NewMockDevice()
	dev := NewDevice(mock, LegacyProtocol{})

	seq := []KeyStroke{{Key: KeyA, Modifiers: ModLCtrl}}
	res, err := dev.SetKeySequence(Button1, seq, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ReportsWritten, "two function reports plus the flash commit")
	assert.False(t, res.Verified, "no input report queued, commit stays unverified")

	want, err := LegacyProtocol{}.KeyReports(Button1, 0, seq)
	require.NoError(t, err)
	require.Len(t, mock.Written, len(want))
	for i, r := range want {
		assert.Equal(t, r.Bytes(), mock.Written[i], "report %d", i)
	}
}

func TestDevicePartialWrite(t *testing.T) {
	mock := hid.NewMockDevice()
	mock.FailOn = 2 // function report lands, flash commit fails
	dev := NewDevice(mock, LegacyProtocol{})

	_, err := dev.SetMediaKey(KnobCCW, MediaVolumeDown, 0)

	var partial *PartialWriteError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, 1, partial.Written)
	assert.Equal(t, 2, partial.Total)
}

func TestDeviceVerifiedCommit(t *testing.T) {
	mock := hid.NewMockDevice()
	// Echo of the flash-commit opcode counts as acknowledgement.
	mock.QueueInput([]byte{0xFF})
	dev := NewDevice(mock, LegacyProtocol{})

	res, err := dev.SetMouseButton(Button3, MouseScrollUp, ModNone, 0)
	require.NoError(t, err)
	assert.True(t, res.Verified)
}

func TestDeviceLedCommitUsesLedOpcode(t *testing.T) {
	mock := hid.NewMockDevice()
	mock.QueueInput([]byte{0xFE})
	dev := NewDevice(mock, LegacyProtocol{})

	res, err := dev.SetLEDMode(LedOn, 0)
	require.NoError(t, err)
	assert.True(t, res.Verified)
	require.Len(t, mock.Written, 2)
	assert.Equal(t, byte(0xB0), mock.Written[0][1])
}

func TestDeviceEncodingErrorWritesNothing(t *testing.T) {
	mock := hid.NewMockDevice()
	dev := NewDevice(mock, LegacyProtocol{})

	_, err := dev.SetMouseButton(Button1, MouseLeft, ModRCtrl, 0)
	require.Error(t, err)
	assert.Empty(t, mock.Written, "encoding failures must precede any write")
}

func TestListDevicesMatchesFragmentCaseInsensitively(t *testing.T) {
	mgr := &fakeManager{infos: []hid.Info{
		padInfo(0x1189, 0x8890, `\\?\hid#vid_1189&pid_8890&mi_01#8&2f`),
		padInfo(0x1189, 0x8890, `\\?\hid#vid_1189&pid_8890&mi_00#8&2e`), // wrong interface
		padInfo(0x046D, 0xC534, `\\?\hid#vid_046d&pid_c534&mi_01#9&11`), // wrong vendor
	}}

	found, err := ListDevices(mgr, KnownDevices)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 0, found[0].ProtocolVersion)
	assert.Contains(t, found[0].Path, "mi_01")
}

func TestOpenPrefersLegacyProtocol(t *testing.T) {
	mock := hid.NewMockDevice()
	mgr := &fakeManager{
		infos: []hid.Info{
			padInfo(0x1189, 0x8860, "usb/1189:8860/MI_01"), // extended, skipped
			padInfo(0x1189, 0x8890, "usb/1189:8890/MI_01"),
		},
		dev: mock,
	}

	dev, err := Open(mgr, KnownDevices)
	require.NoError(t, err)
	require.NoError(t, dev.Close())
	assert.True(t, mock.Closed())
}

func TestOpenNoDevice(t *testing.T) {
	mgr := &fakeManager{}
	_, err := Open(mgr, KnownDevices)
	assert.True(t, errors.Is(err, ErrDeviceNotFound))
}

func TestOpenOnlyExtendedDevices(t *testing.T) {
	mgr := &fakeManager{infos: []hid.Info{
		padInfo(0x1189, 0x8830, "usb/1189:8830/MI_00"),
	}}
	_, err := Open(mgr, KnownDevices)
	assert.True(t, errors.Is(err, ErrUnsupportedProtocol))
}

func TestOpenPropagatesOpenError(t *testing.T) {
	mgr := &fakeManager{
		infos:   []hid.Info{padInfo(0x1189, 0x8890, "usb/1189:8890/MI_01")},
		openErr: fmt.Errorf("hidraw: permission denied"),
	}
	_, err := Open(mgr, KnownDevices)
	assert.ErrorContains(t, err, "permission denied")
}
