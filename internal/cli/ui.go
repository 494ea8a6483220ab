// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // headings, numbers
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // keys
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// report writes styled lines to one output.
type report struct {
	w io.Writer
}

func (r report) title(format string, args ...any) {
	fmt.Fprintln(r.w, StyleTitle.Render(fmt.Sprintf(format, args...)))
}

func (r report) keyValue(key, value string) {
	fmt.Fprintln(r.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func (r report) keyNumber(key string, n int) {
	fmt.Fprintln(r.w, styleKey.Render(key)+" "+StyleNumber.Render(strconv.Itoa(n)))
}

func (r report) success(format string, args ...any) {
	fmt.Fprintln(r.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (r report) warning(format string, args ...any) {
	fmt.Fprintln(r.w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (r report) detail(format string, args ...any) {
	fmt.Fprintln(r.w, "  "+StyleDim.Render(iconArrow)+" "+fmt.Sprintf(format, args...))
}

// joinInts formats xs as "1 2 3", or "-" when empty.
func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}

// rowNames formats 1-based rows with their labels, e.g. "3(top) 4".
func rowNames(labels []string, rows []int) string {
	if len(rows) == 0 {
		return "-"
	}
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
		if r-1 < len(labels) && labels[r-1] != "" {
			parts[i] += "(" + labels[r-1] + ")"
		}
	}

	return strings.Join(parts, " ")
}
