package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tarot-arcade/internal/core"
)

// cellStyles caches one lipgloss style per platform color.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGold; c++ {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if c == core.ColorGold {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}
