package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"gomoku-local/types"
)

const infoPanelWidth = 34

var rulesText = []string{
	"Black moves first",
	"Players alternate, one stone per turn on an empty point",
	"Five or more in a row wins: horizontal, vertical or diagonal",
	"A full board with no five is a draw",
}

// StatusText is the one-line banner for a snapshot.
func StatusText(state types.BoardState) string {
	switch state.Status {
	case types.InProgress:
		return fmt.Sprintf("%s %s to move", state.PlayerToMove.Stone(), state.PlayerToMove)
	case types.BlackWins, types.WhiteWins:
		winner := state.Status.Winner()
		return fmt.Sprintf("%s %s wins!", winner.Stone(), winner)
	case types.Draw:
		return "Board full. Draw!"
	}
	return ""
}

// GameInfoPanel shows the game status, a new game button and the rules
// alongside the board.
type GameInfoPanel struct {
	flex   *tview.Flex
	box    *tview.TextView
	button *tview.Button
	rules  *tview.TextView
}

// NewGameInfoPanel creates a new game info panel. onNewGame runs when the
// New Game button is pressed.
func NewGameInfoPanel(onNewGame func()) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		rules: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetTextAlign(tview.AlignLeft)

	panel.button = tview.NewButton("↻ New Game").SetSelectedFunc(func() {
		if onNewGame != nil {
			onNewGame()
		}
	})
	panel.button.SetBackgroundColor(MenuColors.ButtonBG)
	panel.button.SetLabelColor(MenuColors.ButtonText)

	panel.rules.SetDynamicColors(true)
	panel.rules.SetWordWrap(true)
	panel.rules.SetText(rulesPanelText())

	buttonRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 1, 0, false).
		AddItem(panel.button, 16, 0, false).
		AddItem(nil, 0, 1, false)

	panel.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panel.box, 7, 0, false).
		AddItem(buttonRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(panel.rules, 0, 1, false)

	return panel
}

// Flex returns the panel layout.
func (p *GameInfoPanel) Flex() *tview.Flex {
	return p.flex
}

// SetBoardState updates the panel with the current snapshot.
func (p *GameInfoPanel) SetBoardState(state types.BoardState) {
	p.box.SetText(infoText(state))
}

// infoText renders the status section for a snapshot.
func infoText(state types.BoardState) string {
	var text string

	text += "[white::b]Game Status[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	color := "white"
	switch state.Status {
	case types.BlackWins, types.WhiteWins:
		color = "green"
	case types.Draw:
		color = "yellow"
	}
	text += fmt.Sprintf("[%s::b]%s[-:-:-]\n\n", color, StatusText(state))

	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", state.MoveNumber)
	text += fmt.Sprintf("[white]Last:[-:-:-] %s\n", types.PosToDisplay(state.LastMove))
	return text
}

func rulesPanelText() string {
	text := "[white::b]Rules[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	for _, r := range rulesText {
		text += fmt.Sprintf("[dimgray]·[-] %s\n", r)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel(board.NewGame)
	board.infoPanel = infoPanel
	infoPanel.SetBoardState(board.BoardState)

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Flex(), infoPanelWidth, 0, false)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
	board.refreshHint()
}

// BuildFocusLayout builds the focus mode layout with the centered board and
// the one-line status.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth := types.BoardSize*cellWidth + boardLeft
	boardHeight := types.BoardSize + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(hint, 1, 0, false)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
	board.refreshHint()
}
