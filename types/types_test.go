package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardState(t *testing.T) {
	s := NewBoardState()

	assert.Equal(t, Black, s.PlayerToMove)
	assert.Equal(t, InProgress, s.Status)
	assert.Equal(t, NoPos, s.LastMove)
	assert.False(t, s.HasLastMove())
	assert.False(t, s.Finished())
}

func TestBoardIsCopiedByValue(t *testing.T) {
	s := NewBoardState()
	snapshot := s

	s.Board.Set(3, 4, Black)

	assert.Equal(t, Black, s.Board.At(3, 4))
	assert.Equal(t, Empty, snapshot.Board.At(3, 4))
}

func TestBoardOutOfRangePanics(t *testing.T) {
	var b Board
	for _, p := range []Pos{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}} {
		assert.Panics(t, func() { b.At(p.Row, p.Col) }, "At(%d, %d)", p.Row, p.Col)
		assert.Panics(t, func() { b.Set(p.Row, p.Col, Black) }, "Set(%d, %d)", p.Row, p.Col)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		finished bool
		winner   Color
		name     string
	}{
		{InProgress, false, Empty, "in-progress"},
		{BlackWins, true, Black, "black-wins"},
		{WhiteWins, true, White, "white-wins"},
		{Draw, true, Empty, "draw"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.finished, tt.status.Finished(), tt.name)
		assert.Equal(t, tt.winner, tt.status.Winner(), tt.name)
		assert.Equal(t, tt.name, tt.status.String())
	}

	assert.Equal(t, BlackWins, WinFor(Black))
	assert.Equal(t, WhiteWins, WinFor(White))
}

func TestPosToDisplay(t *testing.T) {
	tests := []struct {
		p    Pos
		want string
	}{
		{Pos{0, 0}, "A1"},
		{Pos{9, 7}, "H10"},
		{Pos{19, 19}, "T20"},
		{Pos{0, 8}, "I1"},
		{NoPos, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PosToDisplay(tt.p))
	}
}
