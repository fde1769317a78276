// Package textutil holds small text helpers for help output.
package textutil

import "strings"

// Wrap greedily breaks text into lines of at most width characters, splitting
// on whitespace. A single word longer than width is kept on its own line
// rather than broken apart.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder

	for _, word := range strings.Fields(text) {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		if line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			continue
		}
		line.WriteString(" ")
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
