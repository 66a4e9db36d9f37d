package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

// NewStatusStyler returns a decorator that colours the warning flags and the
// state line of a rendered status. The text itself is left untouched so the
// same warnings fire with and without colour.
func NewStatusStyler(p termenv.Profile) func(string) string {
	empty := p.String("[EMPTY]").Foreground(p.Color("#f59e0b")).Bold().String()
	full := p.String("[FULL]").Foreground(p.Color("#ef4444")).Bold().String()
	ready := p.String("Ready").Foreground(p.Color("#22c55e")).Bold().String()
	required := p.String("ActionRequired").Foreground(p.Color("#ef4444")).Bold().String()

	return func(status string) string {
		lines := strings.Split(status, "\n")
		for i, line := range lines {
			switch {
			case strings.HasPrefix(line, "State: "):
				state := strings.TrimPrefix(line, "State: ")
				switch state {
				case "Ready":
					state = ready
				case "ActionRequired":
					state = required
				}
				lines[i] = "State: " + state
			default:
				line = strings.Replace(line, "[EMPTY]", empty, 1)
				lines[i] = strings.Replace(line, "[FULL]", full, 1)
			}
		}
		return strings.Join(lines, "\n")
	}
}
