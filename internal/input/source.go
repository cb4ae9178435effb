// Package input supplies raw text lines to the game loop without tying it
// to any concrete origin of those lines.
package input

import (
	"bufio"
	"errors"
	"io"
)

// Source - produces the next raw line. The second return is false once no
// more lines are available; end-of-stream and read errors are not
// distinguished.
type Source interface {
	Next() (string, bool)
}

// Interactive reads lines from a terminal-like reader, blocking until one
// arrives.
type Interactive struct {
	reader *bufio.Reader
}

func NewInteractive(r io.Reader) *Interactive {
	return &Interactive{reader: bufio.NewReader(r)}
}

func (that *Interactive) Next() (string, bool) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, true
		}
		return "", false
	}

	return line, true
}

// Script replays a fixed ordered sequence of lines, for deterministic
// games without a real input collaborator.
type Script struct {
	lines  []string
	cursor int
}

func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

func (that *Script) Next() (string, bool) {
	if that.cursor >= len(that.lines) {
		return "", false
	}

	line := that.lines[that.cursor]
	that.cursor++

	return line, true
}

// Remaining - how many scripted lines have not been consumed yet.
func (that *Script) Remaining() int {
	return len(that.lines) - that.cursor
}
