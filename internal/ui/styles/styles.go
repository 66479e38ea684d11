// Package styles provides the shared color palette for sweep's
// terminal output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette used by the status renderer and the
// interactive pickers.
type Theme struct {
	Primary color.Color // main accent color (branch names, headers)
	Accent  color.Color // highlight color (selected items, unpushed commits)
	Success color.Color // positive outcomes (clean tree, added files)
	Error   color.Color // errors and deletions
	Muted   color.Color // disabled/inactive text (pushed commits)
	Normal  color.Color // standard text
	Info    color.Color // informational text (tags, renames)
	Warning color.Color // modifications, behind counts
}

// DefaultTheme is the default color scheme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("62"),  // cyan/teal
	Accent:  lipgloss.Color("212"), // pink/magenta
	Success: lipgloss.Color("82"),  // green
	Error:   lipgloss.Color("196"), // red
	Muted:   lipgloss.Color("240"), // dark gray
	Normal:  lipgloss.Color("252"), // light gray
	Info:    lipgloss.Color("244"), // gray
	Warning: lipgloss.Color("214"), // orange
}

// DraculaTheme is based on the Dracula color scheme.
var DraculaTheme = Theme{
	Primary: lipgloss.Color("#bd93f9"),
	Accent:  lipgloss.Color("#ff79c6"),
	Success: lipgloss.Color("#50fa7b"),
	Error:   lipgloss.Color("#ff5555"),
	Muted:   lipgloss.Color("#6272a4"),
	Normal:  lipgloss.Color("#f8f8f2"),
	Info:    lipgloss.Color("#8be9fd"),
	Warning: lipgloss.Color("#ffb86c"),
}

// ByName resolves a theme by config name, falling back to the default.
func ByName(name string) Theme {
	switch name {
	case "dracula":
		return DraculaTheme
	default:
		return DefaultTheme
	}
}
