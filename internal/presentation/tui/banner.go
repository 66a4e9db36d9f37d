package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner with the release version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ( (     ", "#d6b48c"},
		{"    ) )    ", "#c49a6c"},
		{" ........  ", "#a47148"},
		{" |      |] ", "#8b5a2b"},
		{" \\      /  ", "#6f4518"},
		{"  `----'   ", "#603808"},
	}

	fmt.Fprintln(w)
	for i, l := range lines {
		s := termenv.String(l.text).Foreground(p.Color(l.color))
		if i == 3 {
			fmt.Fprintf(w, "%s brewer %s\n", s, strings.TrimSpace(version))
			continue
		}
		fmt.Fprintln(w, s)
	}
	fmt.Fprintln(w)
}
