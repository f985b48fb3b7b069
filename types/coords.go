package types

import "strconv"

// Display coordinate system:
// - Columns: A-T, one letter per column, nothing skipped
// - Rows: 1-20, counted from the top of the board
// - Example: (row 0, col 0) is A1, (row 9, col 7) is H10

// ColLabel returns the letter shown under column col.
func ColLabel(col int) string {
	return string(rune('A' + col))
}

// RowLabel returns the number shown beside row.
func RowLabel(row int) string {
	return strconv.Itoa(row + 1)
}

// PosToDisplay converts a position to display notation such as "H10".
// Invalid positions render as "-".
func PosToDisplay(p Pos) string {
	if !p.Valid() {
		return "-"
	}
	return ColLabel(p.Col) + RowLabel(p.Row)
}
