// Package protocol parses the raw-line protocol the game speaks with its
// players: "q"/"Q" to quit, "x,y" to place at a coordinate.
package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketplay/gridgame/internal/entity"
)

const (
	CommandQuit  = "quit"
	CommandPlace = "place"
)

var ErrBadFormat = errors.New("invalid format, should be x,y or q to quit")

// CoordinateError - one of the coordinate fields failed to parse as a
// non-negative integer. Wraps the numeric-parse cause.
type CoordinateError struct {
	Field string
	cause error
}

func (that *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %v", that.Field, that.cause)
}

func (that *CoordinateError) Unwrap() error {
	return that.cause
}

// Command - one parsed input line. Position is meaningful only for
// CommandPlace.
type Command struct {
	Kind     string
	Position entity.Coordinate
}

// ParseCommand - converts one raw input line into a Command. The line is
// trimmed as a whole; individual fields are not, so embedded whitespace
// fails the numeric parse.
func ParseCommand(rawLine string) (Command, error) {
	trimmed := strings.TrimSpace(rawLine)

	if trimmed == "q" || trimmed == "Q" {
		return Command{Kind: CommandQuit}, nil
	}

	fields := strings.Split(trimmed, ",")
	if len(fields) != 2 {
		return Command{}, ErrBadFormat
	}

	x, err := parseField(fields[0])
	if err != nil {
		return Command{}, err
	}

	y, err := parseField(fields[1])
	if err != nil {
		return Command{}, err
	}

	return Command{
		Kind:     CommandPlace,
		Position: entity.Coordinate{X: x, Y: y},
	}, nil
}

// parseField - parses one coordinate field as base-10 unsigned, so
// negative signs, empty fields, and overflow all fail here.
func parseField(field string) (int, error) {
	value, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, &CoordinateError{Field: field, cause: err}
	}

	return int(value), nil
}
