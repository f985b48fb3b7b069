package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku-local/types"
)

// place puts color at every position and returns the board.
func place(t *testing.T, color types.Color, positions ...types.Pos) *types.Board {
	t.Helper()
	var b types.Board
	for _, p := range positions {
		b.Set(p.Row, p.Col, color)
	}
	return &b
}

// line returns n positions starting at (row, col) stepping by (dRow, dCol).
func line(row, col, dRow, dCol, n int) []types.Pos {
	positions := make([]types.Pos, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, types.Pos{Row: row + i*dRow, Col: col + i*dCol})
	}
	return positions
}

// drawPattern is a full-board coloring with no run longer than two in any
// direction: pairs of columns alternate, shifted by one every row.
func drawPattern(row, col int) types.Color {
	if (col/2+row)%2 == 0 {
		return types.Black
	}
	return types.White
}

func TestIsValidMove(t *testing.T) {
	b := place(t, types.White, types.Pos{Row: 5, Col: 5})

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{19, 19, true},
		{5, 5, false},
		{-1, 0, false},
		{0, -1, false},
		{types.BoardSize, 0, false},
		{0, types.BoardSize, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidMove(b, tt.row, tt.col), "IsValidMove(%d, %d)", tt.row, tt.col)
	}
}

func TestCheckWinnerRunLengths(t *testing.T) {
	dirs := []struct {
		name       string
		row, col   int
		dRow, dCol int
	}{
		{"horizontal", 10, 3, 0, 1},
		{"vertical", 3, 10, 1, 0},
		{"diagonal", 3, 3, 1, 1},
		{"anti-diagonal", 3, 16, 1, -1},
	}

	for _, d := range dirs {
		for n := 1; n <= 7; n++ {
			t.Run(fmt.Sprintf("%s/%d", d.name, n), func(t *testing.T) {
				stones := line(d.row, d.col, d.dRow, d.dCol, n)
				b := place(t, types.Black, stones...)
				want := n >= types.WinLength

				// The result must not depend on which stone of the run was placed last.
				for _, last := range stones {
					assert.Equal(t, want, CheckWinner(b, last.Row, last.Col, types.Black),
						"last stone at %v", last)
				}
			})
		}
	}
}

func TestCheckWinnerOneSidedAndSplit(t *testing.T) {
	// Five stones all to the left of the last one, ending at the right edge.
	b := place(t, types.White, line(7, 15, 0, 1, 5)...)
	assert.True(t, CheckWinner(b, 7, 19, types.White))
	assert.True(t, CheckWinner(b, 7, 15, types.White))

	// Two on either side of the placed stone.
	b = place(t, types.Black,
		types.Pos{Row: 4, Col: 2}, types.Pos{Row: 5, Col: 3},
		types.Pos{Row: 6, Col: 4},
		types.Pos{Row: 7, Col: 5}, types.Pos{Row: 8, Col: 6})
	assert.True(t, CheckWinner(b, 6, 4, types.Black))

	// Same shape along the anti-diagonal through a corner.
	b = place(t, types.Black, line(0, 4, 1, -1, 5)...)
	assert.True(t, CheckWinner(b, 2, 2, types.Black))
	assert.True(t, CheckWinner(b, 4, 0, types.Black))
}

func TestCheckWinnerIgnoresOtherPlayer(t *testing.T) {
	b := place(t, types.Black, line(0, 0, 0, 1, 4)...)
	b.Set(0, 4, types.White)

	assert.False(t, CheckWinner(b, 0, 4, types.White))
	assert.False(t, CheckWinner(b, 0, 3, types.Black))

	// A gap breaks the run.
	b = place(t, types.Black, types.Pos{Row: 2, Col: 0}, types.Pos{Row: 2, Col: 1},
		types.Pos{Row: 2, Col: 3}, types.Pos{Row: 2, Col: 4}, types.Pos{Row: 2, Col: 5})
	assert.False(t, CheckWinner(b, 2, 3, types.Black))
}

func TestCheckWinnerOutOfRange(t *testing.T) {
	b := place(t, types.Black, line(0, 0, 0, 1, 5)...)
	assert.False(t, CheckWinner(b, -1, 0, types.Black))
	assert.False(t, CheckWinner(b, 0, types.BoardSize, types.Black))
	assert.False(t, CheckWinner(b, 0, 0, types.Empty))
}

func TestCheckDraw(t *testing.T) {
	var b types.Board
	assert.False(t, CheckDraw(&b))

	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			b.Set(row, col, drawPattern(row, col))
		}
	}
	require.True(t, CheckDraw(&b))

	b.Set(12, 7, types.Empty)
	assert.False(t, CheckDraw(&b))
	assert.Equal(t, types.InProgress, GameStatus(&b, types.Pos{Row: 12, Col: 8}, drawPattern(12, 8)))
}

func TestDrawPatternHasNoFive(t *testing.T) {
	var b types.Board
	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			b.Set(row, col, drawPattern(row, col))
		}
	}
	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			require.False(t, CheckWinner(&b, row, col, b.At(row, col)), "five through (%d, %d)", row, col)
		}
	}
}

func TestNextPlayer(t *testing.T) {
	assert.Equal(t, types.White, NextPlayer(types.Black))
	assert.Equal(t, types.Black, NextPlayer(types.White))
	assert.Equal(t, types.Black, NextPlayer(NextPlayer(types.Black)))
}

func TestGameStatus(t *testing.T) {
	var empty types.Board
	assert.Equal(t, types.InProgress, GameStatus(&empty, types.NoPos, types.Black))

	b := place(t, types.White, line(19, 0, 0, 1, 5)...)
	assert.Equal(t, types.WhiteWins, GameStatus(b, types.Pos{Row: 19, Col: 2}, types.White))

	b = place(t, types.Black, line(0, 19, 1, 0, 5)...)
	assert.Equal(t, types.BlackWins, GameStatus(b, types.Pos{Row: 4, Col: 19}, types.Black))

	// A full board that contains a five is a win, not a draw.
	var full types.Board
	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			full.Set(row, col, drawPattern(row, col))
		}
	}
	for col := 0; col < types.WinLength; col++ {
		full.Set(0, col, types.Black)
	}
	assert.Equal(t, types.BlackWins, GameStatus(&full, types.Pos{Row: 0, Col: 2}, types.Black))

	b = place(t, types.Black, line(0, 0, 0, 1, 2)...)
	assert.Equal(t, types.InProgress, GameStatus(b, types.Pos{Row: 0, Col: 1}, types.Black))
}
