// Package styles defines the terminal styling for stampstore's CLI output.
// Colors adapt to light and dark terminal themes.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	colorError   = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF5F5F"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1B7F3B", Dark: "#5FD787"}
	colorKey     = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

var registry = map[string]lipgloss.Style{
	"Error":   lipgloss.NewStyle().Foreground(colorError).Bold(true),
	"Success": lipgloss.NewStyle().Foreground(colorSuccess),
	"Key":     lipgloss.NewStyle().Foreground(colorKey).Bold(true),
	"Muted":   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
}

// GetStyle returns the named style, or an unstyled one for unknown names
func GetStyle(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
