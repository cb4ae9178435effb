package entity

import "fmt"

// Mark - one of the two sides that can occupy a cell.
type Mark string

const (
	MarkNought Mark = "O"
	MarkCross  Mark = "X"
)

func (that Mark) Opponent() Mark {
	if that == MarkNought {
		return MarkCross
	}
	return MarkNought
}

// Coordinate identifies a cell on the board. Zero-indexed; validity is
// always relative to a concrete board's dimension.
type Coordinate struct {
	X int
	Y int
}

func (that Coordinate) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}
