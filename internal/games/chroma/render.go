package chroma

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-chroma/internal/core"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

const (
	cellWidth  = 4 // 3 glyph columns + 1 gap
	cellHeight = 2 // glyph row + 1 gap
	hudHeight  = 3
	footHeight = 2
	feedGap    = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	board := g.boardRect()
	if board.W > dst.Width() || hudHeight+board.H+footHeight > dst.Height() {
		g.renderTooSmall(dst)
		return
	}
	board = core.CenteredRect(dst.Width(), board.H, board.W, board.H)
	board.Y = hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, board)
	g.renderPopups(dst, board)
	g.renderFeed(dst, board)
	g.renderFooter(dst, board.Bottom())
	g.renderOverlays(dst, board)
}

// boardRect returns the framed board size at the origin.
func (g *Game) boardRect() core.Rect {
	grid := g.ctrl.Settings()
	innerW := grid.Width*cellWidth - 1
	innerH := grid.Height*cellHeight - 1
	return core.NewRect(0, 0, innerW+4, innerH+2)
}

// cellOrigin returns the screen position of a cell's first glyph column.
func cellOrigin(board core.Rect, c engine.Coord) (int, int) {
	return board.X + 2 + c.X*cellWidth, board.Y + 1 + c.Y*cellHeight
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg, hint := "Window too small", "Please resize terminal"
	if dst.Width() < len(msg) {
		msg = "too small"
	}
	if dst.Width() < len(hint) {
		hint = "resize"
	}
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg, core.ColorDefault)
	dst.DrawTextCentered(y+1, hint, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	title := "CHROMA - " + g.Mode().Title()
	if g.puzzle != nil {
		title = "CHROMA - Puzzle: " + g.puzzle.Name
	}
	dst.DrawTextCentered(0, title, core.ColorBrightWhite)
	dst.DrawTextCentered(1, engine.RenderStatus(g.ctrl.Status()), core.ColorDefault)
	dst.DrawTextCentered(2, goalText(g.ctrl.Settings().Win), core.ColorGray)
}

func goalText(w engine.WinCondition) string {
	switch {
	case w.TargetScore > 0 && w.ClearBoard:
		return fmt.Sprintf("Goal: %d points or clear the board", w.TargetScore)
	case w.TargetScore > 0:
		return fmt.Sprintf("Goal: %d points", w.TargetScore)
	case w.ClearBoard:
		return "Goal: clear every colored block"
	default:
		return "Goal: keep the grid open"
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, g.palette.Grid())

	b := g.ctrl.Board()
	for _, pos := range b.Grid().Cells() {
		x, y := cellOrigin(board, pos)
		blk, ok := b.At(pos)
		switch {
		case !ok:
			dst.DrawTextColored(x, y, " · ", g.palette.Grid())
		case blk.Indicator:
			dst.DrawTextColored(x, y, " ◌ ", g.palette.Indicator())
		default:
			dst.DrawTextColored(x, y, blockGlyph(blk.Size), g.palette.Block(blk.Color))
		}
	}
}

func blockGlyph(s engine.Size) string {
	switch s {
	case engine.SizeSmall:
		return " ▪ "
	case engine.SizeMedium:
		return " ■ "
	default:
		return "███"
	}
}

func (g *Game) renderPopups(dst *core.Screen, board core.Rect) {
	for _, p := range g.popups {
		x, y := cellOrigin(board, p.pos)
		x -= (utf8.RuneCountInString(p.text) - 3) / 2
		fg := g.palette.Block(p.color)
		if p.ticks < popupTicks/3 {
			fg = core.ColorGray
		}
		dst.DrawTextColored(x, y, p.text, fg)
	}
}

// renderFeed lists the latest round events right of the board when there
// is room for them.
func (g *Game) renderFeed(dst *core.Screen, board core.Rect) {
	x := board.Right() + feedGap
	width := 0
	for _, line := range g.feed {
		width = max(width, utf8.RuneCountInString(line))
	}
	if len(g.feed) == 0 || x+width > dst.Width() {
		return
	}
	dst.DrawTextColored(x, board.Y, "Last moves", core.ColorGray)
	for i, line := range g.feed {
		dst.DrawText(x, board.Y+1+i, line)
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	dst.DrawTextCentered(y, g.Mode().Instructions()[0], core.ColorGray)
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()
	st := g.ctrl.Status()

	switch {
	case g.showHelp:
		lines := []string{"RULES: " + g.Mode().Title(), ""}
		lines = append(lines, g.Mode().Instructions()...)
		lines = append(lines, "", "Press ? to close")
		g.drawOverlay(dst, dst.Width()/2, cy, lines...)
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case st.LevelComplete:
		g.drawOverlay(dst, cx, cy, "LEVEL COMPLETE!",
			fmt.Sprintf("Score: %d in %d moves", st.TotalScore, st.MoveCount), "Press R to play again")
	case st.GameOver:
		g.drawOverlay(dst, cx, cy, "GRID FULL",
			fmt.Sprintf("Score: %d in %d moves", st.TotalScore, st.MoveCount), "Press R to restart")
	}
}

// drawOverlay draws a boxed block of lines centered on (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	w, h := maxLen+4, len(lines)+2
	box := core.NewRect(
		core.Clamp(centerX-w/2, 0, max(dst.Width()-w, 0)),
		core.Clamp(centerY-h/2, 0, max(dst.Height()-h, 0)),
		w, h,
	)
	centerX = box.X + w/2
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return strings.Join([]string{"Arrows/WASD: Move", "R: Restart", "?: Rules", "P: Pause", "Q: Quit"}, " | ")
}
