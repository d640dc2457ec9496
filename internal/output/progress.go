package output

import (
	"fmt"
	"strings"
)

// ShareBar renders a bar for a 0-100 percentage share.
// Example: "████████░░ 80.0%"
func ShareBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((percent / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := StyleAccent.Render(strings.Repeat("█", filled)) +
		StyleMuted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, StyleMuted.Render(fmt.Sprintf("%.1f%%", percent)))
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 48))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Field renders a "label: value" report line with the value emphasized.
func Field(label string, value string) string {
	return fmt.Sprintf("%s: %s", label, StyleBold.Render(value))
}
