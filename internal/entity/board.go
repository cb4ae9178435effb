package entity

import (
	"errors"
	"fmt"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

var ErrInvalidDimension = errors.New("board dimension must be positive")

// emptyCell marks an unoccupied position inside the grid.
const emptyCell Mark = ""

// Outcome - the result classification computed after a placement. Winner
// is set only when Status is StatusWon.
type Outcome struct {
	Status string
	Winner Mark
}

// InvalidCoordinateError - the placement target lies outside the board.
type InvalidCoordinateError struct {
	Coordinate Coordinate
}

func (that *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%s is an invalid coordinate", that.Coordinate)
}

// OccupiedCellError - the placement target already holds a mark. Both
// sides are carried so the diagnostic can name them.
type OccupiedCellError struct {
	Attempted Coordinate
	Mark      Mark
	Occupying Mark
}

func (that *OccupiedCellError) Error() string {
	return fmt.Sprintf("cell %s is already occupied by %s, %s cannot move there", that.Attempted, that.Occupying, that.Mark)
}

// Board owns the N×N grid and is mutated only through Place.
type Board struct {
	dimension int
	cells     []Mark
	movesMade int
}

// NewBoard - allocates an empty dimension×dimension board.
func NewBoard(dimension int) (*Board, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	return &Board{
		dimension: dimension,
		cells:     make([]Mark, dimension*dimension),
	}, nil
}

func (that *Board) Dimension() int {
	return that.dimension
}

func (that *Board) MovesMade() int {
	return that.movesMade
}

// At - reports the mark at pos and whether the cell is occupied.
// Coordinates outside the board read as unoccupied.
func (that *Board) At(pos Coordinate) (Mark, bool) {
	if !that.contains(pos) {
		return emptyCell, false
	}

	mark := that.cells[that.index(pos)]

	return mark, mark != emptyCell
}

// Place - records mark at pos and returns the outcome of the game after
// that placement. The board is left untouched when an error is returned.
func (that *Board) Place(pos Coordinate, mark Mark) (Outcome, error) {
	if !that.contains(pos) {
		return Outcome{}, &InvalidCoordinateError{Coordinate: pos}
	}

	idx := that.index(pos)
	if occupying := that.cells[idx]; occupying != emptyCell {
		return Outcome{}, &OccupiedCellError{Attempted: pos, Mark: mark, Occupying: occupying}
	}

	that.cells[idx] = mark
	that.movesMade++

	return that.outcomeAfter(pos, mark), nil
}

func (that *Board) contains(pos Coordinate) bool {
	return pos.X >= 0 && pos.X < that.dimension && pos.Y >= 0 && pos.Y < that.dimension
}

func (that *Board) index(pos Coordinate) int {
	return pos.X + pos.Y*that.dimension
}

// outcomeAfter - checks only the lines passing through the cell just
// placed: its column, its row, and each diagonal the cell lies on.
func (that *Board) outcomeAfter(pos Coordinate, mark Mark) Outcome {
	lines := []func(i int) Coordinate{
		func(i int) Coordinate { return Coordinate{X: pos.X, Y: i} },
		func(i int) Coordinate { return Coordinate{X: i, Y: pos.Y} },
	}

	if pos.X == pos.Y {
		lines = append(lines, func(i int) Coordinate { return Coordinate{X: i, Y: i} })
	}

	if pos.X+pos.Y == that.dimension-1 {
		lines = append(lines, func(i int) Coordinate { return Coordinate{X: i, Y: that.dimension - 1 - i} })
	}

	for _, line := range lines {
		if that.lineFilled(mark, line) {
			return Outcome{Status: StatusWon, Winner: mark}
		}
	}

	if that.movesMade == that.dimension*that.dimension {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}

// lineFilled - scans one full line, giving up on the first cell that is
// empty or held by the other side.
func (that *Board) lineFilled(mark Mark, line func(i int) Coordinate) bool {
	for i := 0; i < that.dimension; i++ {
		if that.cells[that.index(line(i))] != mark {
			return false
		}
	}

	return true
}
