// Package engine defines the interface between the board UI and whatever
// owns the game state.
package engine

import "gomoku-local/types"

// GameEngine owns a game and applies moves to it.
type GameEngine interface {
	// GetBoardState returns a snapshot of the current game.
	GetBoardState() types.BoardState

	// PlayMove places the current player's stone at (row, col).
	// Returns false and leaves the game untouched if the cell is occupied,
	// out of range, or the game is already over.
	PlayMove(row, col int) bool

	// Reset discards the current game and starts a new one with black to move.
	Reset()

	// OnMove registers a callback for every accepted move.
	// state is the snapshot taken right after the move was applied.
	OnMove(func(move types.Move, state types.BoardState))

	// OnGameEnd registers a callback for when a move ends the game.
	OnGameEnd(func(state types.BoardState))

	// OnReset registers a callback for when a new game starts.
	OnReset(func(state types.BoardState))
}
