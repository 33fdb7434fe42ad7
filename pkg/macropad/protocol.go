package macropad

import "fmt"

// Function-report opcodes and type tags understood by the legacy firmware.
const (
	opLayerSelect   = 0x01
	opLed           = 0xB0
	opWriteFlash    = 0xFF
	opWriteFlashLed = 0xFE

	tagBasic      = 0x00
	tagMultimedia = 0x01
)

// LegacyProtocol encodes configuration requests for 3-button 1-knob devices
// (protocol version 0). Every assignment is a short transaction:
//
//  1. a layer-selection report, only when ReportID is non-zero
//  2. the function report(s) carrying the assignment
//  3. a flash-commit report, without which the assignment stays in volatile
//     memory and is lost on power-cycle
//
// The encoder is pure; it performs no I/O.
type LegacyProtocol struct {
	// ReportID is 0 for every known single-layer device. Multi-layer devices
	// use a non-zero ID, which also switches on layer-selection reports and
	// the layer nibble in the function report's type tag.
	ReportID byte
}

func (p LegacyProtocol) layerSelection(layer byte) Report {
	r := Report{id: p.ReportID}
	r.data[0] = opLayerSelect
	r.data[1] = layer
	return r
}

func (p LegacyProtocol) writeFlash(led bool) Report {
	r := Report{id: p.ReportID}
	if led {
		r.data[0] = opWriteFlashLed
	} else {
		r.data[0] = opWriteFlash
	}
	return r
}

// prologue returns the leading layer-selection report when the protocol
// addresses layers at all. Dead for ReportID 0 but part of the wire contract.
func (p LegacyProtocol) prologue(layer byte) []Report {
	if p.ReportID == 0 {
		return nil
	}
	return []Report{p.layerSelection(layer)}
}

func (p LegacyProtocol) typeTag(tag byte, layer byte) byte {
	if p.ReportID != 0 {
		tag |= (layer << 4) & 0xFF
	}
	return tag
}

// KeyReports encodes a keyboard sequence assignment. The firmware expects one
// function report per index 0..len(seq): the index-0 report announces the
// sequence and carries the first key's modifiers, report i carries key i-1.
// Each report is laid out [target, tag, len, index, modifiers, key].
//
// The firmware stores at most five keys and keeps modifiers for the first key
// only, so longer sequences and modifiers on later keys are rejected before
// any report is built. An empty sequence encodes the None key, clearing the
// assignment.
func (p LegacyProtocol) KeyReports(target Target, layer byte, seq []KeyStroke) ([]Report, error) {
	if len(seq) > MaxSequenceKeys {
		return nil, fmt.Errorf("%w: got %d", ErrSequenceTooLong, len(seq))
	}
	for i, ks := range seq {
		if i > 0 && ks.Modifiers != ModNone {
			return nil, fmt.Errorf("%w: key %d has modifiers", ErrModifierPosition, i+1)
		}
	}
	if len(seq) == 0 {
		seq = []KeyStroke{{Key: KeyNone}}
	}

	reports := p.prologue(layer)
	for index := 0; index <= len(seq); index++ {
		r := Report{id: p.ReportID}
		r.data[0] = byte(target)
		r.data[1] = p.typeTag(tagBasic, layer)
		r.data[2] = byte(len(seq))
		r.data[3] = byte(index)
		if index == 0 {
			r.data[4] = byte(seq[0].Modifiers)
		} else {
			ks := seq[index-1]
			r.data[4] = byte(ks.Modifiers)
			r.data[5] = byte(ks.Key)
		}
		reports = append(reports, r)
	}
	reports = append(reports, p.writeFlash(false))
	return reports, nil
}

// MediaReports encodes a media key assignment. Protocol 0 stores only the low
// byte of the usage; the high byte is carried for non-zero report IDs.
func (p LegacyProtocol) MediaReports(target Target, layer byte, key MediaKey) ([]Report, error) {
	r := Report{id: p.ReportID}
	r.data[0] = byte(target)
	r.data[1] = p.typeTag(tagMultimedia, layer)
	r.data[2] = byte(key)
	if p.ReportID != 0 {
		r.data[3] = byte(key >> 8)
	}

	reports := p.prologue(layer)
	reports = append(reports, r, p.writeFlash(false))
	return reports, nil
}

// MouseReports encodes a mouse button or scroll assignment. Click and scroll
// codes occupy different payload slots and never co-occur; which slot is used
// depends only on which enumeration the code belongs to. Right-side modifiers
// are rejected because the firmware cannot store them for mouse assignments.
func (p LegacyProtocol) MouseReports(target Target, layer byte, button MouseButton, mods Modifier) ([]Report, error) {
	if mods&^leftModifierMask != 0 {
		return nil, fmt.Errorf("%w: got 0x%02X", ErrRightModifier, byte(mods))
	}

	r := Report{id: p.ReportID}
	r.data[0] = byte(target)
	r.data[1] = p.typeTag(tagMultimedia, layer)
	if button.IsScroll() {
		r.data[3] = byte(button)
	} else {
		r.data[2] = byte(button)
	}
	r.data[4] = byte(mods)

	reports := p.prologue(layer)
	reports = append(reports, r, p.writeFlash(false))
	return reports, nil
}

// LedReports encodes the global LED mode. The LED report does not address an
// action target; its flash commit uses the LED opcode.
func (p LegacyProtocol) LedReports(layer byte, mode LedMode) ([]Report, error) {
	if p.ReportID == 0 && mode > LedBreathe {
		return nil, fmt.Errorf("LED mode %d not supported on protocol 0", mode)
	}

	r := Report{id: p.ReportID}
	r.data[0] = opLed
	r.data[1] = byte(mode)
	r.data[2] = 0 // color channel, absent on this hardware

	return []Report{r, p.writeFlash(true)}, nil
}
