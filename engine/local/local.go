// Package local provides a pass-and-play GameEngine where both players share
// one terminal.
package local

import (
	"log/slog"
	"sync"

	"gomoku-local/rules"
	"gomoku-local/types"
)

// LocalEngine implements engine.GameEngine. It is the only writer of its
// BoardState; every transition happens under mu and callbacks run after mu
// is released.
type LocalEngine struct {
	state  types.BoardState
	logger *slog.Logger

	moveCallback  func(move types.Move, state types.BoardState)
	endCallback   func(state types.BoardState)
	resetCallback func(state types.BoardState)

	mu sync.Mutex
}

// NewLocalEngine creates an engine holding a fresh game.
func NewLocalEngine(logger *slog.Logger) *LocalEngine {
	return &LocalEngine{
		state:  types.NewBoardState(),
		logger: logger,
	}
}

// GetBoardState returns a copy of the current state.
func (e *LocalEngine) GetBoardState() types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// PlayMove applies the current player's move at (row, col). Moves on
// occupied or out-of-range cells and moves after the game ended are
// ignored and reported as false.
func (e *LocalEngine) PlayMove(row, col int) bool {
	e.mu.Lock()

	if status := e.state.Status; status.Finished() {
		e.mu.Unlock()
		e.logger.Debug("move ignored, game over", "row", row, "col", col, "status", status.String())
		return false
	}
	if !rules.IsValidMove(&e.state.Board, row, col) {
		e.mu.Unlock()
		e.logger.Debug("move ignored, invalid cell", "row", row, "col", col)
		return false
	}

	player := e.state.PlayerToMove
	e.state.Board.Set(row, col, player)
	e.state.LastMove = types.Pos{Row: row, Col: col}
	e.state.MoveNumber++

	e.state.Status = rules.GameStatus(&e.state.Board, e.state.LastMove, player)
	if !e.state.Finished() {
		e.state.PlayerToMove = rules.NextPlayer(player)
	}

	move := types.Move{Pos: e.state.LastMove, Color: player}
	snapshot := e.state
	onMove, onEnd := e.moveCallback, e.endCallback
	e.mu.Unlock()

	e.logger.Info("move played",
		"move", snapshot.MoveNumber,
		"player", player.String(),
		"at", types.PosToDisplay(move.Pos),
		"status", snapshot.Status.String())

	if onMove != nil {
		onMove(move, snapshot)
	}
	if snapshot.Finished() {
		e.logger.Info("game over", "status", snapshot.Status.String(), "moves", snapshot.MoveNumber)
		if onEnd != nil {
			onEnd(snapshot)
		}
	}
	return true
}

// Reset starts a new game from any state.
func (e *LocalEngine) Reset() {
	e.mu.Lock()
	prev := e.state.Status
	e.state = types.NewBoardState()
	snapshot := e.state
	onReset := e.resetCallback
	e.mu.Unlock()

	e.logger.Info("new game", "previous_status", prev.String())
	if onReset != nil {
		onReset(snapshot)
	}
}

func (e *LocalEngine) OnMove(callback func(move types.Move, state types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

func (e *LocalEngine) OnGameEnd(callback func(state types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

func (e *LocalEngine) OnReset(callback func(state types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetCallback = callback
}
