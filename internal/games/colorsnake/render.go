package colorsnake

import (
	"fmt"

	"github.com/vovakirdan/colorsnake/internal/core"
)

const (
	hudHeight = 2
	cellWidth = 2 // terminal columns per grid cell
)

// RequiredScreen returns the smallest screen that fits the board and HUD.
func RequiredScreen(grid core.Grid) (int, int) {
	return grid.W*cellWidth + 2, grid.H + 2 + hudHeight
}

// Render draws the snapshot into dst.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	renderHUD(dst, s)

	needW, needH := RequiredScreen(s.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	board := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, s.Grid.H+2)
	dst.DrawBox(board)

	for _, it := range s.Consumables {
		x, y := cellOrigin(board, it.Cell)
		dst.SetColored(x, y, '●', it.Color.ScreenColor())
	}

	for i, seg := range s.Runner {
		x, y := cellOrigin(board, seg)
		if i == 0 {
			dst.SetColored(x, y, '@', core.ColorWhite)
			continue
		}
		dst.SetColored(x, y, 'o', core.ColorBrightGreen)
	}

	switch s.Outcome {
	case OutcomeWon:
		renderOverlay(dst, board, "You Win!", fmt.Sprintf("Score: %d", s.Score), "N: next  R: restart")
	case OutcomeLost:
		renderOverlay(dst, board, "Game Over", fmt.Sprintf("Score: %d", s.Score), "R: restart")
	}
}

func cellOrigin(board core.Rect, c core.Cell) (int, int) {
	return board.X + 1 + c.X*cellWidth, board.Y + 1 + c.Y
}

// renderHUD draws the score line, target swatch and separator.
func renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Score: %d/%d  Target: ", s.Score, s.WinScore)
	dst.DrawText(0, 0, hud)
	x := len(hud)
	dst.SetColored(x, 0, '●', s.Target.ScreenColor())
	dst.DrawText(x+2, 0, string(s.Target))

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered box over the board.
func renderOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := core.NewRect(board.X+(board.W-w-4)/2, board.Y+(board.H-len(lines)-2)/2, w+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+2+(w-len(l))/2, box.Y+1+i, l)
	}
}
