// Package style defines the visual styling for paperman's terminal output.
//
// Colors and styles come from an embedded YAML theme and use adaptive
// colors that adjust to light and dark terminals. Styles are looked up
// by semantic name through GetStyle; the Renderer in this package turns
// operation results into styled or plain text.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Theme represents the complete theme configuration
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	if err := LoadTheme(embeddedTheme); err != nil {
		// The embedded theme should always parse; fall back to unstyled
		// output instead of crashing if it somehow does not
		initDefaultStyles()
	}
}

// LoadTheme parses YAML theme data and rebuilds the style registry
func LoadTheme(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor)
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style)
	for name, def := range theme.Styles {
		registry[name] = buildStyle(colors, def)
	}

	return nil
}

// initDefaultStyles fills the registry with plain styles so rendering
// works even without a loadable theme
func initDefaultStyles() {
	registry = make(map[string]lipgloss.Style)
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Muted", "Bold", "FilePath", "LinkTarget", "Count",
	} {
		registry[name] = lipgloss.NewStyle()
	}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(colors map[string]lipgloss.AdaptiveColor, def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
