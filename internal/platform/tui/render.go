package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mergedrop/internal/core"
)

// palette maps core colors to terminal colors. Tile hues are pale on light
// terminals and deep on dark ones, so dark tile text stays readable on both.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:           lipgloss.AdaptiveColor{Light: "#fca5a5", Dark: "#b91c1c"},
	core.ColorGreen:         lipgloss.AdaptiveColor{Light: "#86efac", Dark: "#15803d"},
	core.ColorYellow:        lipgloss.AdaptiveColor{Light: "#fef9c3", Dark: "#713f12"},
	core.ColorBlue:          lipgloss.AdaptiveColor{Light: "#93c5fd", Dark: "#1d4ed8"},
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.AdaptiveColor{Light: "#f87171", Dark: "#dc2626"},
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.AdaptiveColor{Light: "#fef08a", Dark: "#854d0e"},
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.AdaptiveColor{Light: "#fed7aa", Dark: "#9a3412"},
	core.ColorAmber:         lipgloss.AdaptiveColor{Light: "#fdba74", Dark: "#c2410c"},
	core.ColorGray:          lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#4b5563"},
	core.ColorPink:          lipgloss.AdaptiveColor{Light: "#f9a8d4", Dark: "#be185d"},
	core.ColorPurple:        lipgloss.AdaptiveColor{Light: "#d8b4fe", Dark: "#7e22ce"},
	core.ColorIndigo:        lipgloss.AdaptiveColor{Light: "#a5b4fc", Dark: "#4338ca"},
	core.ColorEmerald:       lipgloss.AdaptiveColor{Light: "#6ee7b7", Dark: "#047857"},
	core.ColorDark:          lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"},
}

// cellStyle returns the style for a foreground/background pair. Text on a
// tile background is bold.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		style = style.Background(c).Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
