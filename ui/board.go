// Package ui specifies custom controls for tview to play Gomoku in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/types"
)

const (
	// boardLeft is the width of the row label gutter.
	boardLeft = 4
	// cellWidth is the number of terminal columns per intersection.
	cellWidth = 2
)

// BoardUI draws a snapshot of the game and forwards cell activations to
// the engine. It holds no authoritative state.
type BoardUI struct {
	Box        *tview.Box
	BoardState types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selRow     int
	selCol     int
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *BoardUI) SelectedTile() *types.Pos {
	p := types.Pos{Row: g.selRow, Col: g.selCol}
	if !p.Valid() {
		return nil
	}
	return &p
}

// MoveSelection moves the cursor h columns and v rows. The first call
// places the cursor on the last move, or the board center.
func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if g.BoardState.HasLastMove() {
			g.selRow, g.selCol = g.BoardState.LastMove.Row, g.BoardState.LastMove.Col
		} else {
			g.selRow, g.selCol = types.BoardSize/2, types.BoardSize/2
		}
		return
	}
	if !types.InBounds(g.selRow+v, g.selCol+h) {
		return
	}
	g.selRow += v
	g.selCol += h
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(),
		hint:       hint,
		app:        app,
		selRow:     -1,
		selCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		mx, my := event.Position()
		if !board.Box.InRect(mx, my) {
			return action, event
		}
		bx, by, _, _ := board.Box.GetRect()
		if p, ok := cellAt(bx, by, mx, my); ok {
			board.ResetSelection()
			board.ActivateCell(p.Row, p.Col)
		}
		return action, event
	})
	return board
}

// cellAt maps a screen position to the intersection drawn there, for a
// board whose top-left corner is at (x, y).
func cellAt(x, y, screenX, screenY int) (types.Pos, bool) {
	dx := screenX - (x + boardLeft)
	if dx < 0 {
		return types.NoPos, false
	}
	p := types.Pos{Row: screenY - y, Col: dx / cellWidth}
	if !p.Valid() {
		return types.NoPos, false
	}
	return p, true
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := &g.BoardState
	theme := g.cfg.Theme

	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			stone := state.Board[row][col]
			i := int(stone)
			if !theme.DrawStoneBackground {
				i = 0
			}
			if (col%2 + row%2) == 1 {
				i += 3
			}

			var fgColor tcell.Color
			var drawRune rune
			switch stone {
			case types.Black:
				drawRune = theme.Symbols.BlackStone
				fgColor = g.styles[1]
			case types.White:
				drawRune = theme.Symbols.WhiteStone
				fgColor = g.styles[2]
			default:
				if theme.UseGridLines {
					drawRune = getGridRune(row, col, types.BoardSize, types.BoardSize)
				} else {
					drawRune = theme.Symbols.BoardSquare
				}
				fgColor = g.styles[9]
			}
			if stone != types.Empty && theme.DrawStoneBackground {
				// Stone drawn as a filled background; contrast the glyph against it.
				fgColor = g.styles[int(oppositeColor(stone))]
			}

			if row == g.selRow && col == g.selCol {
				if theme.DrawCursorBackground {
					i = 8
				} else if !theme.UseGridLines && stone == types.Empty {
					drawRune = theme.Symbols.Cursor
				}
			} else if row == state.LastMove.Row && col == state.LastMove.Col {
				if theme.DrawLastPlayedBackground {
					i = 7
				} else if !theme.UseGridLines {
					drawRune = theme.Symbols.LastPlayed
				}
			}

			style := tcell.StyleDefault.Background(g.styles[i]).Foreground(fgColor)
			if theme.UseGridLines && stone == types.Empty {
				hasStoneRight := col < types.BoardSize-1 && state.Board[row][col+1] != types.Empty
				drawGridCell(screen, style, drawRune, row, col, x+boardLeft, y, hasStoneRight)
			} else {
				drawStoneCell(screen, style, drawRune, row, col, x+boardLeft, y)
			}
		}
	}
	drawCoordinates(screen, x, y, g)
	return x, y, types.BoardSize*cellWidth + boardLeft, types.BoardSize + 1
}

// ConnectEngine attaches the board to the engine and subscribes to its
// state changes.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e

	e.OnMove(func(move types.Move, state types.BoardState) {
		g.setState(state)
	})
	e.OnGameEnd(func(state types.BoardState) {
		g.ResetSelection()
		g.setState(state)
	})
	e.OnReset(func(state types.BoardState) {
		g.setState(state)
	})

	g.setState(e.GetBoardState())
}

func (g *BoardUI) setState(state types.BoardState) {
	g.BoardState = state
	g.refreshHint()
	if g.app != nil {
		// Spawn goroutine to avoid deadlock when called from the event loop
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	}
}

// ActivateCell forwards a click on (row, col) to the engine. Occupied
// cells are not forwarded; the engine validates everything else, including
// clicks after the game is over.
func (g *BoardUI) ActivateCell(row, col int) {
	if g.eng == nil {
		return
	}
	if !types.InBounds(row, col) || g.BoardState.Board[row][col] != types.Empty {
		return
	}
	g.eng.PlayMove(row, col)
}

// PlaySelection activates the cell under the cursor.
func (g *BoardUI) PlaySelection() {
	sel := g.SelectedTile()
	if sel == nil {
		return
	}
	g.ActivateCell(sel.Row, sel.Col)
}

// NewGame asks the engine for a fresh game.
func (g *BoardUI) NewGame() {
	if g.eng == nil {
		return
	}
	g.ResetSelection()
	g.eng.Reset()
	if g.app != nil {
		g.app.SetFocus(g.Box)
	}
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 9
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.hint == nil {
		return
	}

	if g.focusMode {
		g.hint.SetText("  " + StatusText(g.BoardState) + "   f to toggle")
		return
	}

	controls := "  hjkl/↑↓←→ move  ⏎ play  r new game  c colors  f focus  q quit"
	if g.BoardState.Finished() {
		controls = "  r new game  c colors  q quit"
	}
	g.hint.SetText(controls)
}

func oppositeColor(c types.Color) types.Color {
	switch c {
	case types.Black:
		return types.White
	case types.White:
		return types.Black
	}
	return types.Empty
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*cellWidth, t+row, r, nil, c)
	s.SetContent(l+col*cellWidth+1, t+row, ' ', nil, c)
}

// drawGridCell draws an empty intersection followed by the line towards
// the next column.
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, row, col, l, t int, hasStoneRight bool) {
	s.SetContent(l+col*cellWidth, t+row, r, nil, c)

	rightConn := '─'
	if col == types.BoardSize-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+col*cellWidth+1, t+row, rightConn, nil, c)
}

// getGridRune returns the box-drawing character for an empty intersection.
func getGridRune(row, col, height, width int) rune {
	isTop := row == 0
	isBottom := row == height-1
	isLeft := col == 0
	isRight := col == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// drawCoordinates draws column letters below the board and row numbers in
// the left gutter, highlighting the cursor and last move.
func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := 'A'
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = 'Ａ'
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[8])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[7])
	last := ui.BoardState.LastMove

	for col := 0; col < types.BoardSize; col++ {
		_style := style
		if col == ui.selCol {
			_style = highlight
		} else if col == last.Col {
			_style = lpHighlight
		}
		s.SetContent(x+boardLeft+col*cellWidth, y+types.BoardSize, hCoord+rune(col), nil, _style)
		s.SetContent(x+boardLeft+col*cellWidth+1, y+types.BoardSize, ' ', nil, _style)
	}

	for row := 0; row < types.BoardSize; row++ {
		_style := style
		if row == ui.selRow {
			_style = highlight
		} else if row == last.Row {
			_style = lpHighlight
		}
		label := []rune(types.RowLabel(row))
		tensRune := ' '
		if len(label) > 1 {
			tensRune = label[0]
		}
		s.SetContent(x+1, y+row, tensRune, nil, _style)
		s.SetContent(x+2, y+row, label[len(label)-1], nil, _style)
	}
}
