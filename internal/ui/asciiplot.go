package ui

import (
	"fmt"
	"strings"

	"github.com/MasonDill/waveform-visualizer/internal/protocol"
	"github.com/MasonDill/waveform-visualizer/internal/render"
)

// Trace characters for the two logic levels.
const (
	highMark = '▔'
	lowMark  = '▁'
)

// RenderASCII draws a two-row step trace of the waveform for terminal
// preview, one column per bit, downsampled when the waveform is wider than
// the terminal. Differential probes, where both logic levels measure the
// same magnitude, collapse to a single row.
func RenderASCII(w *protocol.Waveform, width int) string {
	if w.Len() == 0 {
		return ""
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lo, hi := w.VoltagePoints[0], w.VoltagePoints[0]
	for _, v := range w.VoltagePoints {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	labelWidth := 7 // e.g. " 3.5V  "
	cols := w.Len()
	if cols > width-labelWidth {
		cols = width - labelWidth
	}

	top := make([]rune, cols)
	bot := make([]rune, cols)
	for c := 0; c < cols; c++ {
		i := c * w.Len() / cols
		if w.VoltagePoints[i] >= hi {
			top[c], bot[c] = highMark, ' '
		} else {
			top[c], bot[c] = ' ', lowMark
		}
	}

	var sb strings.Builder
	if hi == lo {
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("%5.1fV ", hi)))
		sb.WriteString(HighLevelStyle.Render(strings.Repeat(string(highMark), cols)))
		sb.WriteByte('\n')
	} else {
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("%5.1fV ", hi)))
		sb.WriteString(HighLevelStyle.Render(string(top)))
		sb.WriteByte('\n')
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("%5.1fV ", lo)))
		sb.WriteString(LowLevelStyle.Render(string(bot)))
		sb.WriteByte('\n')
	}

	unit := render.UnitFor(w.MaxTime())
	sb.WriteString(MutedStyle.Render(fmt.Sprintf("%*s0%s%*s%.0f%s",
		labelWidth, "", unit.Suffix,
		cols-len(unit.Suffix)-5, "",
		w.MaxTime()*unit.Scale, unit.Suffix)))
	sb.WriteByte('\n')
	return sb.String()
}
