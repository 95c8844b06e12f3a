package mergedrop

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mergedrop/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	sideWidth  = 14 // Next-piece panel
)

// tileColors is the tile background palette, warm to cool.
var tileColors = map[int]core.Color{
	2:    core.ColorYellow,
	4:    core.ColorBrightYellow,
	8:    core.ColorOrange,
	16:   core.ColorAmber,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorPink,
	256:  core.ColorPurple,
	512:  core.ColorIndigo,
	1024: core.ColorBlue,
	2048: core.ColorGreen,
	4096: core.ColorEmerald,
}

// TileColor returns the background color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorGray
}

// LayoutSize returns the screen size needed to render a rows x cols board.
func LayoutSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 1 + sideWidth, hudHeight + rows*cellHeight + 1 + 1
}

// Render draws the snapshot to the screen.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	needW, needH := LayoutSize(snap.Rows, snap.Cols)
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst)
		return
	}

	boardW := snap.Cols*cellWidth + 1
	boardH := snap.Rows*cellHeight + 1
	boardX := (dst.Width() - boardW - sideWidth) / 2
	boardY := hudHeight

	renderHUD(dst, snap, boardX, boardW)
	renderBoard(dst, snap, boardX, boardY)
	renderNext(dst, snap, boardX+boardW+2, boardY)
	renderOverlays(dst, snap, boardX+boardW/2, boardY+boardH/2)

	dst.DrawText(boardX, boardY+boardH, Controls())
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and highest tile.
func renderHUD(dst *core.Screen, snap Snapshot, boardX, boardW int) {
	title := "2048 TETRIS"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", snap.Score))

	best := fmt.Sprintf("Highest: %d", snap.HighestTile)
	dst.DrawTextColor(boardX+boardW-len(best), 1, best, TileColor(snap.HighestTile))
}

// renderBoard draws the grid lines and tiles.
func renderBoard(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	for y := range snap.Rows + 1 {
		for x := range snap.Cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == snap.Cols:
				corner = '┐'
			case y == snap.Rows && x == 0:
				corner = '└'
			case y == snap.Rows && x == snap.Cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == snap.Rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == snap.Cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < snap.Cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < snap.Rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range snap.Board {
		for x, v := range row {
			if v == Empty {
				continue
			}
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			text := core.ColorDark
			if snap.Falling(x, y) {
				text = core.ColorBrightWhite
			}
			drawTile(dst, cellX, cellY, v, text)
		}
	}
}

// renderNext draws the next-piece preview.
func renderNext(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawText(x, y, "Next")
	box := core.NewRect(x, y+1, cellWidth+1, cellHeight+1)
	dst.DrawBox(box)
	drawTile(dst, x+1, y+2, snap.Next.Value, core.ColorDark)
}

// drawTile paints the cell interior at (x, y) in the tile color and centers
// the value on it.
func drawTile(dst *core.Screen, x, y, v int, text core.Color) {
	bg := TileColor(v)
	dst.FillBackground(core.NewRect(x, y, cellWidth-1, cellHeight-1), bg)

	valStr := strconv.Itoa(v)
	padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
	dst.DrawTextStyled(x+padLeft, y, valStr, text, bg)
}

// renderOverlays draws pause and game over boxes.
func renderOverlays(dst *core.Screen, snap Snapshot, centerX, centerY int) {
	switch snap.Status {
	case StatusPaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case StatusGameOver:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Highest tile: %d", snap.HighestTile),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func Controls() string {
	return "←/→: Move | ↓: Down | Space: Drop | P: Pause | R: Restart | Q: Quit"
}
