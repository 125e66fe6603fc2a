package protocol

import (
	"fmt"
	"testing"
)

// TestFieldRoundTrip verifies that parsing the nibble-padded hex form of a
// value and reconstructing it from the symbols returns the value unchanged.
func TestFieldRoundTrip(t *testing.T) {
	lengths := []int{1, 2, 3, 4, 7, 8, 11, 15, 29}

	for _, length := range lengths {
		t.Run(fmt.Sprintf("length_%d", length), func(t *testing.T) {
			f := NewField("X", length)
			max := uint64(1)<<uint(length) - 1

			// Exhaustive for small fields, corners for wide ones
			values := []uint64{0, 1, max / 2, max}
			if length <= 8 {
				values = values[:0]
				for v := uint64(0); v <= max; v++ {
					values = append(values, v)
				}
			}

			for _, v := range values {
				hexStr := fmt.Sprintf("%0*x", f.NumChars(), v)
				if err := f.ParseHex(hexStr, 0); err != nil {
					t.Fatalf("ParseHex(%q, 0) error = %v", hexStr, err)
				}
				if got := f.Value(); got != v {
					t.Errorf("round trip of %d through %q = %d", v, hexStr, got)
				}
			}
		})
	}
}

// TestFieldBitOrder verifies the MSB of the parsed value lands at symbol
// index 0.
func TestFieldBitOrder(t *testing.T) {
	f := NewField("X", 4)
	if err := f.ParseHex("8", 0); err != nil {
		t.Fatalf("ParseHex error = %v", err)
	}
	want := []int{1, 0, 0, 0}
	for i, s := range f.Symbols {
		if s.LogicLevel != want[i] {
			t.Errorf("Symbols[%d].LogicLevel = %d, want %d", i, s.LogicLevel, want[i])
		}
	}
}

// TestFieldNibbleExcess tests that fields shorter than their character span
// discard the high-order excess bits.
func TestFieldNibbleExcess(t *testing.T) {
	f := NewField("X", 3)

	// "f" carries 4 bits; only the low 3 are kept
	if err := f.ParseHex("f", 0); err != nil {
		t.Fatalf("ParseHex error = %v", err)
	}
	if got := f.Value(); got != 7 {
		t.Errorf("Value() = %d, want 7", got)
	}

	// "8" has only its excess bit set, so the field reads as zero
	if err := f.ParseHex("8", 0); err != nil {
		t.Fatalf("ParseHex error = %v", err)
	}
	if got := f.Value(); got != 0 {
		t.Errorf("Value() = %d, want 0", got)
	}
}

// TestFieldParseErrors tests the parse failure modes
func TestFieldParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		data      string
		bitOffset int
	}{
		{"negative offset", 4, "ff", -1},
		{"payload too short", 8, "a", 0},
		{"payload too short at offset", 4, "ab", 8},
		{"non-hex character", 8, "zz", 0},
		{"empty payload", 1, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField("X", tt.length)
			err := f.ParseHex(tt.data, tt.bitOffset)
			if err == nil {
				t.Fatalf("ParseHex(%q, %d) expected error", tt.data, tt.bitOffset)
			}
			if !IsParseError(err) {
				t.Errorf("expected ParseError, got %v", err)
			}
		})
	}
}

// TestFieldParseLeavesDuration verifies parsing never touches durations.
func TestFieldParseLeavesDuration(t *testing.T) {
	f := NewField("X", 4)
	f.Symbols[2].Duration = 42

	if err := f.ParseHex("f", 0); err != nil {
		t.Fatalf("ParseHex error = %v", err)
	}
	if f.Symbols[2].Duration != 42 {
		t.Errorf("Duration = %v, want 42 (parse must not touch duration)", f.Symbols[2].Duration)
	}
}

// TestFieldFreshStorage verifies each field allocates its own symbol slice.
func TestFieldFreshStorage(t *testing.T) {
	a := NewField("A", 4)
	b := NewField("B", 4)

	if err := a.ParseHex("f", 0); err != nil {
		t.Fatalf("ParseHex error = %v", err)
	}
	if got := b.Value(); got != 0 {
		t.Errorf("parsing A changed B: B.Value() = %d", got)
	}
}

// TestFieldParseDecimal tests the decimal entry adapter
func TestFieldParseDecimal(t *testing.T) {
	t.Run("agrees with hex entry", func(t *testing.T) {
		dec := NewField("X", 11)
		hex := NewField("X", 11)

		if err := dec.ParseDecimal("291"); err != nil {
			t.Fatalf("ParseDecimal error = %v", err)
		}
		if err := hex.ParseHex("123", 0); err != nil {
			t.Fatalf("ParseHex error = %v", err)
		}
		if dec.Value() != hex.Value() {
			t.Errorf("decimal entry = %d, hex entry = %d", dec.Value(), hex.Value())
		}
	})

	t.Run("invalid decimal", func(t *testing.T) {
		f := NewField("X", 8)
		if err := f.ParseDecimal("abc"); !IsParseError(err) {
			t.Errorf("expected ParseError, got %v", err)
		}
	})

	t.Run("value too wide for span", func(t *testing.T) {
		f := NewField("X", 8)
		if err := f.ParseDecimal("256"); !IsValidationError(err) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}
