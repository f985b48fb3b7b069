// Package types contains shared data structures for gomoku-local.
package types

import "fmt"

// BoardSize is the fixed dimension of the board.
const BoardSize = 20

// WinLength is the number of contiguous stones needed to win.
const WinLength = 5

// Color is the state of a single intersection, and doubles as the player
// identity for Black and White.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Stone returns the glyph used in status text for the color.
func (c Color) Stone() string {
	switch c {
	case Black:
		return "●"
	case White:
		return "○"
	default:
		return "·"
	}
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	InProgress Status = iota
	BlackWins
	WhiteWins
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case BlackWins:
		return "black-wins"
	case WhiteWins:
		return "white-wins"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Finished returns true for the terminal states.
func (s Status) Finished() bool {
	return s != InProgress
}

// Winner returns the winning color, or Empty for in-progress and draw.
func (s Status) Winner() Color {
	switch s {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	}
	return Empty
}

// WinFor returns the winning status for the given player.
func WinFor(c Color) Status {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Pos is a 0-indexed (row, col) coordinate.
type Pos struct {
	Row int
	Col int
}

// NoPos marks the absence of a last move.
var NoPos = Pos{Row: -1, Col: -1}

// InBounds reports whether row and col are both within [0, BoardSize).
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid returns true if the position lies on the board.
func (p Pos) Valid() bool {
	return InBounds(p.Row, p.Col)
}

// Move is a stone placed by a player.
type Move struct {
	Pos
	Color Color
}

// Board is indexed as Board[row][col]. It is an array so that assignment
// copies it.
type Board [BoardSize][BoardSize]Color

// At returns the cell at (row, col). Out-of-range coordinates panic.
func (b *Board) At(row, col int) Color {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("types: board access out of range (%d, %d)", row, col))
	}
	return b[row][col]
}

// Set stores c at (row, col). Out-of-range coordinates panic.
func (b *Board) Set(row, col int, c Color) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("types: board access out of range (%d, %d)", row, col))
	}
	b[row][col] = c
}

// BoardState is a read-only snapshot of a game.
type BoardState struct {
	Board        Board
	PlayerToMove Color
	Status       Status
	LastMove     Pos
	MoveNumber   int
}

// NewBoardState returns the fresh-start state: empty board, black to move.
func NewBoardState() BoardState {
	return BoardState{
		PlayerToMove: Black,
		Status:       InProgress,
		LastMove:     NoPos,
	}
}

// Finished returns true if the game is over.
func (s *BoardState) Finished() bool {
	return s.Status.Finished()
}

// HasLastMove returns true once a stone has been placed since the last reset.
func (s *BoardState) HasLastMove() bool {
	return s.LastMove.Valid()
}
