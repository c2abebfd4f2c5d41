// Package textutil provides the low-level string helpers shared by the
// printers: greedy word wrapping, whitespace normalization, trailing
// newline enforcement and indentation strings.
package textutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText greedily wraps text at the given display width, breaking on
// whitespace runs. A single word wider than width gets its own overlong
// line rather than being split. Empty text yields one empty line.
//
// width must be positive; a non-positive width is a caller bug and
// panics.
func WrapText(text string, width int) []string {
	if width <= 0 {
		panic(fmt.Sprintf("textutil: wrap width must be positive, got %d", width))
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	for _, w := range words {
		wWidth := runewidth.StringWidth(w)
		if curWidth == 0 {
			cur.WriteString(w)
			curWidth = wWidth
			continue
		}
		if curWidth+1+wWidth <= width {
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + wWidth
			continue
		}
		lines = append(lines, cur.String())
		cur.Reset()
		cur.WriteString(w)
		curWidth = wWidth
	}
	lines = append(lines, cur.String())
	return lines
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines to a
// single space and trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// EnsureTrailingNewline trims all trailing whitespace and newlines, then
// appends exactly one newline. Empty or whitespace-only input maps to
// the empty string.
func EnsureTrailingNewline(text string) string {
	trimmed := strings.TrimRight(text, " \t\r\n")
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}

// Indent builds an indentation string of the given character width.
// When useTabs is set, whole tab stops are emitted as tabs and the
// remainder as spaces. Non-positive widths yield "".
func Indent(width int, useTabs bool, tabWidth int) string {
	if width <= 0 {
		return ""
	}
	if !useTabs || tabWidth <= 0 {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/tabWidth) + strings.Repeat(" ", width%tabWidth)
}
