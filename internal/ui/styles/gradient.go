package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// applyGradient renders bold text with a horizontal color gradient.
// Blending happens in HCL color space for perceptually uniform transitions.
func applyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) <= 1 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	c1, _ := colorful.MakeColor(parseColor(from))
	c2, _ := colorful.MakeColor(parseColor(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		hex := c1.BlendHcl(c2, t).Hex()
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hex)).
			Render(cluster))
	}

	return b.String()
}

// parseColor converts a lipgloss.Color to a color.Color.
func parseColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
