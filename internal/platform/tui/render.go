package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// fieldRenderer implements core.Renderer on top of a cell screen by
// scaling logical field coordinates to terminal cells. Rectangles keep
// at least one cell per axis so thin shapes stay visible on small
// terminals.
type fieldRenderer struct {
	screen    *core.Screen
	fieldW    float64
	fieldH    float64
	theme     config.Theme
	textColor core.RGBA
}

// newFieldRenderer creates a renderer projecting a fieldW x fieldH
// logical field onto the given screen.
func newFieldRenderer(screen *core.Screen, fieldW, fieldH float64, theme config.Theme) *fieldRenderer {
	return &fieldRenderer{
		screen:    screen,
		fieldW:    fieldW,
		fieldH:    fieldH,
		theme:     theme,
		textColor: parseHexColor(theme.Text.Color, core.ColorWhite),
	}
}

// cellX converts a logical x coordinate to a cell column.
func (r *fieldRenderer) cellX(x float64) int {
	return int(x / r.fieldW * float64(r.screen.Width()))
}

// cellY converts a logical y coordinate to a cell row.
func (r *fieldRenderer) cellY(y float64) int {
	return int(y / r.fieldH * float64(r.screen.Height()))
}

// Clear erases the screen buffer.
func (r *fieldRenderer) Clear() {
	r.screen.Clear()
}

// FillRect draws a filled rectangle scaled onto the cell grid.
func (r *fieldRenderer) FillRect(rect core.Rect) {
	x := r.cellX(rect.Left())
	y := r.cellY(rect.Top())
	w := core.Max(r.cellX(rect.Right())-x, 1)
	h := core.Max(r.cellY(rect.Bottom())-y, 1)

	r.screen.FillCells(x, y, w, h, r.theme.FillRune(), rect.Fill.Premultiplied())
}

// FillCircle draws a filled circle. On a cell grid the ball collapses
// to its center cell.
func (r *fieldRenderer) FillCircle(c core.Circle) {
	r.screen.Set(r.cellX(c.X()), r.cellY(c.Y()), r.theme.BallRune(), c.Fill.Premultiplied())
}

// DrawText draws text at the scaled position using the theme's text
// color when one is configured.
func (r *fieldRenderer) DrawText(x, y float64, text string, color core.RGBA) {
	if r.theme.Text.Color != "" {
		color = r.textColor
	}
	r.screen.DrawText(r.cellX(x), r.cellY(y), text, color)
}

// parseHexColor parses a #rrggbb string, returning fallback on any
// malformed input.
func parseHexColor(s string, fallback core.RGBA) core.RGBA {
	var c core.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return fallback
	}
	c.A = 255
	return c
}

// styleCache memoizes lipgloss styles per color; the game only uses a
// handful of colors so the cache stays tiny.
var styleCache = map[core.RGBA]lipgloss.Style{}

// styleFor returns a lipgloss style rendering the given foreground
// color as truecolor.
func styleFor(c core.RGBA) lipgloss.Style {
	if st, ok := styleCache[c]; ok {
		return st
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	styleCache[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for
// display. Adjacent cells with the same color are grouped to minimize
// ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Color).Render(run.String()))
		}
	}
	return sb.String()
}
