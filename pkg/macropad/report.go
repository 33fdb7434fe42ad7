package macropad

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ReportDataSize is the payload size of every output report the firmware
// accepts. The serialized wire buffer is one byte longer (report ID first).
const ReportDataSize = 64

// Report is one HID output report: a report ID and a fixed-size payload.
// Reports are immutable once built; a configuration transaction is an ordered
// list of them and must be transmitted in order.
type Report struct {
	id   byte
	data [ReportDataSize]byte
}

// NewReport builds a report from a payload of at most ReportDataSize bytes.
// Shorter payloads are zero-padded.
func NewReport(id byte, payload []byte) (Report, error) {
	if len(payload) > ReportDataSize {
		return Report{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	r := Report{id: id}
	copy(r.data[:], payload)
	return r, nil
}

// ID returns the report ID byte.
func (r Report) ID() byte { return r.id }

// Bytes serializes the report to its wire form: the report ID followed by the
// zero-padded payload. The result is always 1+ReportDataSize bytes; a
// divergence here is invisible on the wire but makes the firmware ignore the
// report.
func (r Report) Bytes() []byte {
	buf := make([]byte, 1+ReportDataSize)
	buf[0] = r.id
	copy(buf[1:], r.data[:])
	return buf
}

func (r Report) String() string {
	return fmt.Sprintf("Report(id=%d, data=%s)", r.id, hexBytes(r.data[:]))
}

func hexBytes(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
