// Package busframe adapts CAN frames to the hex payloads consumed by the
// bit-level frame model. It lets callers describe a frame the natural way
// (identifier plus data bytes) instead of hand-assembling the payload.
package busframe

import (
	"fmt"
	"strings"

	"go.einride.tech/can"

	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

// Identifier range limits for classical CAN.
const (
	MaxStdID = 0x7FF
	MaxExtID = 0x1FFFFFFF
)

// Encode packs a CAN frame into the nibble-padded hex payload of the J1939
// layout: dominant SOF, identifier, control carrying the DLC, the first data
// byte, a zero CRC placeholder, dominant ACK and recessive EOF. The bit
// stream is zero-padded on the right to a whole number of hex characters.
//
// The layout carries a single data byte; frames with a longer payload encode
// only Data[0]. The 3-bit control field carries the low bits of the DLC.
// Returns a ValidationError for identifiers or lengths outside classical
// CAN limits.
func Encode(f can.Frame) (string, error) {
	idBits := j1939.StdIDBits
	maxID := uint32(MaxStdID)
	if f.IsExtended {
		idBits = j1939.ExtIDBits
		maxID = MaxExtID
	}
	if f.ID > maxID {
		return "", protocol.NewValidationError(fmt.Sprintf(
			"identifier 0x%X does not fit in %d bits", f.ID, idBits))
	}
	if f.Length > 8 {
		return "", protocol.NewValidationError(fmt.Sprintf(
			"data length %d exceeds classical CAN maximum of 8", f.Length))
	}

	var data byte
	if f.Length > 0 {
		data = f.Data[0]
	}

	var w bitWriter
	w.write(0, j1939.SOFBits)
	w.write(uint64(f.ID), idBits)
	w.write(uint64(f.Length), j1939.ControlBits)
	w.write(uint64(data), j1939.DataBits)
	w.write(0, j1939.CRCBits)
	w.write(0, j1939.ACKBits)
	w.write((1<<j1939.EOFBits)-1, j1939.EOFBits)
	return w.hex(), nil
}

// NewFrame builds an einride CAN frame from an identifier and data bytes,
// deriving the extended flag from the identifier range the way MustFrame in
// classical CAN libraries does.
func NewFrame(id uint32, data []byte) (can.Frame, error) {
	if len(data) > 8 {
		return can.Frame{}, protocol.NewValidationError(fmt.Sprintf(
			"data length %d exceeds classical CAN maximum of 8", len(data)))
	}
	var f can.Frame
	f.ID = id
	f.IsExtended = id > MaxStdID
	if f.IsExtended && id > MaxExtID {
		return can.Frame{}, protocol.NewValidationError(fmt.Sprintf(
			"identifier 0x%X exceeds the 29-bit extended range", id))
	}
	f.Length = uint8(len(data))
	copy(f.Data[:], data)
	return f, nil
}

// bitWriter accumulates bits most significant first and renders them as hex.
type bitWriter struct {
	bits []byte
}

func (w *bitWriter) write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, byte((v>>uint(i))&1))
	}
}

func (w *bitWriter) hex() string {
	for len(w.bits)%4 != 0 {
		w.bits = append(w.bits, 0)
	}
	var sb strings.Builder
	for i := 0; i < len(w.bits); i += 4 {
		nib := w.bits[i]<<3 | w.bits[i+1]<<2 | w.bits[i+2]<<1 | w.bits[i+3]
		sb.WriteByte("0123456789abcdef"[nib])
	}
	return sb.String()
}
