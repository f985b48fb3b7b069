package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/types"
)

// ColorConfigUI lets the player pick board and line colors with a live
// preview. Choices are saved to the config file.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	logger    *slog.Logger
	onDone    func()

	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool
}

type paletteEntry struct {
	code int
	name string
}

// Warm wood-like tones
var boardColors = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{223, "Peach"},
	{222, "Gold"},
	{220, "Bright Yellow"},
	{214, "Orange Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{252, "Light Gray"},
	{248, "Medium Gray"},
	{188, "Light Beige"},
}

// Darker tones that contrast with the board
var lineColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{232, "Black"},
	{240, "Gray"},
}

// A short diagonal run and a blocked line for the preview board.
var previewStones = map[types.Pos]types.Color{
	{Row: 1, Col: 1}: types.Black,
	{Row: 2, Col: 2}: types.Black,
	{Row: 3, Col: 3}: types.Black,
	{Row: 1, Col: 2}: types.White,
	{Row: 2, Col: 3}: types.White,
	{Row: 4, Col: 4}: types.White,
}

const previewSize = 7

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, logger *slog.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		logger:             logger,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	cc.colorList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))
	cc.populateColorList()

	// Preview follows the highlighted entry
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if cc.editingLine {
			cc.selectedLineColor = entries[index].code
		} else {
			cc.selectedBoardColor = entries[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

// apply stores the highlighted colors in the config and saves it. Picking a
// line color returns to board color selection; picking a board color
// closes the screen.
func (cc *ColorConfigUI) apply() {
	if cc.editingLine {
		cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
	} else {
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
	}
	if err := cc.cfg.Save(); err != nil {
		cc.logger.Error("saving config failed", "err", err)
	}

	if cc.editingLine {
		cc.editingLine = false
		cc.populateColorList()
		return
	}
	if cc.onDone != nil {
		cc.onDone()
	}
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	title := " Board Color (Tab: line color) "
	if cc.editingLine {
		current = cc.selectedLineColor
		title = " Line Color (Tab: board color) "
	}
	cc.colorList.SetTitle(title)

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	lineColor := tcell.PaletteColor(cc.selectedLineColor)

	boardStyle := tcell.StyleDefault.Background(boardColor).Foreground(lineColor)
	stoneStyles := map[types.Color]tcell.Style{
		types.Black: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)),
		types.White: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)),
	}

	startX := x + 2
	startY := y + 1

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	for row := 0; row < previewSize; row++ {
		for col := 0; col < previewSize; col++ {
			p := types.Pos{Row: row, Col: col}
			style := boardStyle
			char := getGridRune(row, col, previewSize, previewSize)
			stone, hasStone := previewStones[p]
			if hasStone {
				char = cc.cfg.Theme.Symbols.BlackStone
				if stone == types.White {
					char = cc.cfg.Theme.Symbols.WhiteStone
				}
				style = stoneStyles[stone]
			}
			screen.SetContent(startX+col*cellWidth, startY+row, char, nil, style)

			if col < previewSize-1 {
				connector := '─'
				_, hasStoneRight := previewStones[types.Pos{Row: row, Col: col + 1}]
				if hasStone || hasStoneRight {
					connector = ' '
				}
				screen.SetContent(startX+col*cellWidth+1, startY+row, connector, nil, boardStyle)
			}
		}
	}

	info := fmt.Sprintf("Board: %d  Line: %d", cc.selectedBoardColor, cc.selectedLineColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+previewSize+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
