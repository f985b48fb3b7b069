// Package rules implements the five-in-a-row rules as pure functions over a
// board snapshot. None of the functions mutate their arguments.
package rules

import "gomoku-local/types"

// direction is a (row, col) step along one of the four axes.
type direction struct {
	dRow int
	dCol int
}

var directions = [4]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal, top-left to bottom-right
	{1, -1}, // diagonal, top-right to bottom-left
}

// IsValidMove returns true if (row, col) is on the board and empty.
func IsValidMove(board *types.Board, row, col int) bool {
	return types.InBounds(row, col) && board[row][col] == types.Empty
}

// CheckWinner returns true if player's stone at (row, col) is part of a run
// of at least WinLength stones along any axis. Only runs through (row, col)
// are considered, since a new winning line must contain the newest stone.
// Out-of-range coordinates yield false.
func CheckWinner(board *types.Board, row, col int, player types.Color) bool {
	if !types.InBounds(row, col) || player == types.Empty {
		return false
	}
	for _, d := range directions {
		count := 1
		count += runLength(board, row, col, d.dRow, d.dCol, player)
		count += runLength(board, row, col, -d.dRow, -d.dCol, player)
		if count >= types.WinLength {
			return true
		}
	}
	return false
}

// runLength counts player's stones walking away from (row, col), excluding
// the origin. The walk stops at the first mismatch or the board edge and
// never looks further than WinLength-1 cells.
func runLength(board *types.Board, row, col, dRow, dCol int, player types.Color) int {
	n := 0
	for i := 1; i < types.WinLength; i++ {
		r, c := row+i*dRow, col+i*dCol
		if !types.InBounds(r, c) || board[r][c] != player {
			break
		}
		n++
	}
	return n
}

// CheckDraw returns true if no empty cell remains. Callers must check for a
// winner first: a full board with a five is a win.
func CheckDraw(board *types.Board) bool {
	for row := range board {
		for _, c := range board[row] {
			if c == types.Empty {
				return false
			}
		}
	}
	return true
}

// NextPlayer returns the player who moves after player.
func NextPlayer(player types.Color) types.Color {
	if player == types.Black {
		return types.White
	}
	return types.Black
}

// GameStatus derives the status after player placed a stone at last.
// Without a last move the game is in progress.
func GameStatus(board *types.Board, last types.Pos, player types.Color) types.Status {
	if !last.Valid() {
		return types.InProgress
	}
	if CheckWinner(board, last.Row, last.Col, player) {
		return types.WinFor(player)
	}
	if CheckDraw(board) {
		return types.Draw
	}
	return types.InProgress
}
