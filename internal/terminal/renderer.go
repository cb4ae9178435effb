// Package terminal renders the board and the protocol prompts to a
// line-oriented display.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketplay/gridgame/internal/entity"
)

const (
	noughtColor = "4" // ansi blue
	crossColor  = "1" // ansi red
)

// Renderer writes the board one text row per y, one glyph per cell, with
// a space for empty cells. Glyphs are colored when the output supports it.
type Renderer struct {
	output      *termenv.Output
	noughtGlyph string
	crossGlyph  string
}

func NewRenderer(w io.Writer, noughtGlyph, crossGlyph string) *Renderer {
	return &Renderer{
		output:      termenv.NewOutput(w),
		noughtGlyph: noughtGlyph,
		crossGlyph:  crossGlyph,
	}
}

// Greeting - printed once before the first prompt.
func (that *Renderer) Greeting() {
	fmt.Fprintln(that.output, "Lets play tic tac toe!")
}

// Prompt - asks the current side for its move.
func (that *Renderer) Prompt(mark entity.Mark) {
	fmt.Fprintf(that.output, "%s play, enter x,y coordinate to pick a tile or Q to quit!\n", that.styled(mark))
}

// RenderBoard - draws the whole grid.
func (that *Renderer) RenderBoard(board *entity.Board) {
	var row strings.Builder

	for y := 0; y < board.Dimension(); y++ {
		row.Reset()

		for x := 0; x < board.Dimension(); x++ {
			mark, occupied := board.At(entity.Coordinate{X: x, Y: y})
			if !occupied {
				row.WriteByte(' ')
				continue
			}

			row.WriteString(that.styled(mark))
		}

		fmt.Fprintln(that.output, row.String())
	}
}

// Report - prints a diagnostic or status line.
func (that *Renderer) Report(message string) {
	fmt.Fprintln(that.output, message)
}

func (that *Renderer) styled(mark entity.Mark) string {
	glyph, color := that.crossGlyph, crossColor
	if mark == entity.MarkNought {
		glyph, color = that.noughtGlyph, noughtColor
	}

	return that.output.String(glyph).Foreground(that.output.Color(color)).String()
}
