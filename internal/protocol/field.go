package protocol

import (
	"fmt"
	"strconv"
)

// Field is a named, fixed-length run of bits within a frame. Each Field owns
// its own symbol storage: NewField always allocates a fresh slice, so no two
// Fields ever alias the same backing array.
type Field struct {
	Name    string
	Length  int // bits
	Symbols []Symbol
}

// NewField creates a field of the given bit length. All symbols start at
// logic level 0 with duration 0; durations are assigned later by the owning
// Config before waveform assembly.
//
// Fields longer than 64 bits are not supported by the hex parser.
func NewField(name string, length int) *Field {
	return &Field{
		Name:    name,
		Length:  length,
		Symbols: make([]Symbol, length),
	}
}

// NumChars returns how many hex characters the field consumes during a
// parse. Character extraction is nibble aligned, so a field shorter than one
// nibble still reads a full character.
func (f *Field) NumChars() int {
	n := (f.Length + 3) / 4
	if n < 1 {
		n = 1
	}
	return n
}

// ParseHex assigns the field's logic levels from a hex payload.
//
// The field's characters start at bitOffset/4 (integer division) and span
// NumChars characters. The substring is parsed as a base-16 unsigned
// integer; bit i of the value lands at symbol index Length-1-i, placing the
// most significant parsed bit at index 0. High-order bits beyond Length are
// discarded: nibble alignment governs character extraction, bit extraction
// governs value assignment.
//
// Durations are left untouched. Returns a ParseError if bitOffset is
// negative, the payload is too short for the field's span, or the substring
// contains non-hex characters.
func (f *Field) ParseHex(data string, bitOffset int) error {
	if bitOffset < 0 {
		return NewParseError(fmt.Sprintf("field %s: negative bit offset %d", f.Name, bitOffset), nil)
	}

	charOffset := bitOffset / 4
	numChars := f.NumChars()
	if charOffset+numChars > len(data) {
		return NewParseError(fmt.Sprintf(
			"field %s: payload too short: need %d hex chars at offset %d, have %d",
			f.Name, numChars, charOffset, len(data)), nil)
	}

	chunk := data[charOffset : charOffset+numChars]
	v, err := strconv.ParseUint(chunk, 16, 64)
	if err != nil {
		return NewParseError(fmt.Sprintf("field %s: invalid hex %q", f.Name, chunk), err)
	}

	for i := 0; i < f.Length; i++ {
		f.Symbols[f.Length-1-i].LogicLevel = int((v >> uint(i)) & 1)
	}
	return nil
}

// ParseDecimal assigns the field's logic levels from a base-10 value.
//
// This is a thin adapter over ParseHex: the value is rendered as
// nibble-padded hex and fed through the exact same bit-assignment path, so
// decimal entry can never diverge from hex entry. Values that do not fit the
// field's character span are rejected with a ValidationError.
func (f *Field) ParseDecimal(value string) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return NewParseError(fmt.Sprintf("field %s: invalid decimal %q", f.Name, value), err)
	}

	hexStr := fmt.Sprintf("%0*x", f.NumChars(), v)
	if len(hexStr) > f.NumChars() {
		return NewValidationError(fmt.Sprintf(
			"field %s: value %d does not fit in %d bits", f.Name, v, f.Length))
	}
	return f.ParseHex(hexStr, 0)
}

// Value reconstructs the unsigned integer currently held by the field's
// symbols, reading symbol index 0 as the most significant bit.
func (f *Field) Value() uint64 {
	var v uint64
	for _, s := range f.Symbols {
		v = v<<1 | uint64(s.LogicLevel&1)
	}
	return v
}
