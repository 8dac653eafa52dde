package tarot

import (
	"fmt"

	platformcore "github.com/vovakirdan/tarot-arcade/internal/core"
	"github.com/vovakirdan/tarot-arcade/internal/games/tarot/core"
)

// pieceColors maps piece types to terminal colors.
var pieceColors = map[core.Type]platformcore.Color{
	core.TypeI: platformcore.ColorCyan,
	core.TypeO: platformcore.ColorYellow,
	core.TypeT: platformcore.ColorMagenta,
	core.TypeS: platformcore.ColorGreen,
	core.TypeZ: platformcore.ColorRed,
	core.TypeJ: platformcore.ColorBlue,
	core.TypeL: platformcore.ColorOrange,

	core.TypeSigil:   platformcore.ColorBrightMagenta,
	core.TypeHex:     platformcore.ColorBrightCyan,
	core.TypeYod:     platformcore.ColorBrightYellow,
	core.TypeCross:   platformcore.ColorBrightRed,
	core.TypeKey:     platformcore.ColorGold,
	core.TypeEye:     platformcore.ColorBrightBlue,
	core.TypeSerpent: platformcore.ColorBrightGreen,
	core.TypeTree:    platformcore.ColorGreen,
	core.TypeRune:    platformcore.ColorPink,
	core.TypeAnkh:    platformcore.ColorBrightWhite,
}

func colorOf(t core.Type) platformcore.Color {
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return platformcore.ColorWhite
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	view := g.session.View(g.ghostPolicy)
	well := g.wellRect(dst, view)

	g.renderWell(dst, well, view)
	g.renderHold(dst, well, view)
	g.renderNext(dst, well, view)

	switch {
	case view.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// wellRect is the bordered playfield, centered horizontally below the HUD.
func (g *Game) wellRect(dst *platformcore.Screen, view core.View) platformcore.Rect {
	w := view.Width*cellWidth + 2
	h := view.Height + 2
	return platformcore.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		st := g.session.Stats()
		hud = fmt.Sprintf(" %s | Score: %d  Level: %d  Lines: %d/%d",
			g.Title(), st.Score, st.Level, st.LinesThisLevel, st.LinesToLevel)
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderWell draws the board, the ghost and the active piece.
func (g *Game) renderWell(dst *platformcore.Screen, well platformcore.Rect, view core.View) {
	dst.DrawBoxColored(well, platformcore.ColorGray)
	ox, oy := well.X+1, well.Y+1

	for y, row := range view.Board {
		for x, cell := range row {
			if t, ok := cell.Type(); ok {
				g.drawCell(dst, ox+x*cellWidth, oy+y, '█', colorOf(t))
			}
		}
	}

	if g.cfg.Ghost.Enabled && !view.GameOver && view.Ghost.Distance > 0 {
		for _, c := range view.Ghost.Coordinates() {
			if c.Y >= 0 {
				g.drawCell(dst, ox+c.X*cellWidth, oy+c.Y, '░', platformcore.ColorGray)
			}
		}
	}

	for _, c := range view.Active.Coordinates() {
		if c.Y >= 0 {
			g.drawCell(dst, ox+c.X*cellWidth, oy+c.Y, '█', colorOf(view.Active.Type))
		}
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, x, y int, r rune, c platformcore.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// drawMini draws a piece's spawn shape at (x, y) and returns its height.
func (g *Game) drawMini(dst *platformcore.Screen, x, y int, t core.Type, dim bool) int {
	shape := core.ShapeFor(t, 0)
	color := colorOf(t)
	if dim {
		color = platformcore.ColorGray
	}
	for _, c := range shape.Cells() {
		g.drawCell(dst, x+c.X*cellWidth, y+c.Y, '█', color)
	}
	return shape.Height()
}

// renderHold draws the hold rack left of the well.
func (g *Game) renderHold(dst *platformcore.Screen, well platformcore.Rect, view core.View) {
	if g.cfg.Hold.Slots == 0 {
		return
	}
	x := well.X - panelWidth
	y := well.Y
	dst.DrawTextColored(x, y, "HOLD", platformcore.ColorBrightWhite)
	y += 2

	for i := 0; i < g.cfg.Hold.Slots; i++ {
		label := fmt.Sprintf("%d:", i+1)
		dst.DrawTextColored(x, y, label, platformcore.ColorGray)
		if i < len(view.Held) {
			y += g.drawMini(dst, x+3, y, view.Held[i], view.HoldUsed) + 1
		} else {
			dst.DrawTextColored(x+3, y, "--", platformcore.ColorGray)
			y += 2
		}
	}
}

// renderNext draws the preview queue and run stats right of the well.
func (g *Game) renderNext(dst *platformcore.Screen, well platformcore.Rect, view core.View) {
	x := well.Right() + 2
	y := well.Y

	if len(view.Queue) > 0 {
		dst.DrawTextColored(x, y, "NEXT", platformcore.ColorBrightWhite)
		y += 2
		for _, t := range view.Queue {
			y += g.drawMini(dst, x, y, t, false) + 1
		}
	}

	st := view.Stats
	lines := []string{
		fmt.Sprintf("Combo  %d", st.Combo),
		fmt.Sprintf("T-Spin %d", st.TSpins),
		fmt.Sprintf("Gold   %d", st.Gold),
	}
	for _, line := range lines {
		dst.DrawText(x, y, line)
		y++
	}

	if g.banner != "" {
		dst.DrawTextColored(x, y+1, g.banner, platformcore.ColorGold)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
