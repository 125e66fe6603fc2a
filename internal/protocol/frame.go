package protocol

import (
	"strings"

	"github.com/MasonDill/waveform-visualizer/internal/logging"
)

// Frame is an ordered sequence of Fields. Field order is fixed at
// construction and defines each field's cumulative bit offset:
// offset(field k) is the sum of the lengths of fields 0..k-1.
type Frame struct {
	Fields []*Field
}

// NewFrame creates a frame over the given fields. The sequence is stored
// verbatim; callers wanting independent frames must construct independent
// fields (layout factories do exactly that).
func NewFrame(fields ...*Field) *Frame {
	return &Frame{Fields: fields}
}

// TotalBits returns the sum of all field lengths.
func (fr *Frame) TotalBits() int {
	total := 0
	for _, f := range fr.Fields {
		total += f.Length
	}
	return total
}

// MinHexChars returns the minimum payload length, in hex characters, that
// every field in the frame can parse from.
func (fr *Frame) MinHexChars() int {
	need := 0
	offset := 0
	for _, f := range fr.Fields {
		end := offset/4 + f.NumChars()
		if end > need {
			need = end
		}
		offset += f.Length
	}
	return need
}

// FieldByName returns the first field with the given name, or nil.
func (fr *Frame) FieldByName(name string) *Field {
	for _, f := range fr.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Parse maps a hex payload onto the frame's fields, walking them in order
// with a running bit offset. The first failing field aborts the walk and its
// error is returned; the frame must then be considered invalid as a whole
// until a subsequent parse succeeds.
func (fr *Frame) Parse(data string) error {
	offset := 0
	for _, f := range fr.Fields {
		if err := f.ParseHex(data, offset); err != nil {
			return err
		}
		logging.LogFieldParse(f.Name, offset, f.Length)
		offset += f.Length
	}
	return nil
}

// AllSymbols returns the frame's symbols concatenated in field order. It
// never mutates the frame and returns the same result when called repeatedly
// between parses.
func (fr *Frame) AllSymbols() []Symbol {
	out := make([]Symbol, 0, fr.TotalBits())
	for _, f := range fr.Fields {
		out = append(out, f.Symbols...)
	}
	return out
}

// PayloadHex renders the frame's current logic levels as a nibble-padded hex
// string, most significant bit first. This is the canonical payload form of
// a frame assembled field-by-field (interactive entry).
func (fr *Frame) PayloadHex() string {
	symbols := fr.AllSymbols()

	var sb strings.Builder
	nib := 0
	count := 0
	for _, s := range symbols {
		nib = nib<<1 | (s.LogicLevel & 1)
		count++
		if count == 4 {
			sb.WriteByte(hexDigits[nib])
			nib, count = 0, 0
		}
	}
	if count > 0 {
		sb.WriteByte(hexDigits[nib<<uint(4-count)])
	}
	return sb.String()
}

const hexDigits = "0123456789abcdef"
