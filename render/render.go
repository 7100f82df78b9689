// Package render draws a staff as fixed-width ASCII notation.
package render

import (
	"github.com/jsphweid/sheetmusic/constants"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/staff"
)

// Render tidies the staff's rests in place (merge, then fill) and draws it.
func Render(s *staff.Staff) *Grid {
	s.ReduceRests()
	s.FillRests()
	return draw(s)
}

func countSlots(s *staff.Staff) int {
	return s.NumNotes() + s.Length()
}

func draw(s *staff.Staff) *Grid {
	g := newGrid(countSlots(s))

	col := 0
	g.barLine(col)
	for _, bar := range s.Bars() {
		// accidentals hold until the end of the bar
		carried := make(map[int]model.Shift)
		for _, n := range bar {
			col += constants.SlotWidth
			g.note(n, col, carried)
		}
		col += constants.SlotWidth
		g.barLine(col)
	}
	return g
}

func (g *Grid) note(n *model.Note, col int, carried map[int]model.Shift) {
	pos, ok := n.Pitch.Position()
	if !ok {
		g.rest(n, col)
		return
	}

	g.head(pos, col, n)
	dir := stemDirection(pos)
	g.stemAndFlag(pos, col, n, dir)

	// the primary's accidental counts before its harmony's
	shift := effectiveShift(pos, n.Shift, carried)

	if h := n.Harmony; h != nil {
		if hpos, ok := h.Pitch.Position(); ok {
			g.head(hpos, col, h)
			g.stemAndFlag(hpos, col, h, harmonyStemDirection(pos, hpos))
			g.shift(hpos, col, effectiveShift(hpos, h.Shift, carried))
		}
	}

	g.shift(pos, col, shift)
}

// effectiveShift records an explicit accidental for the rest of the bar, or
// returns the one carried from earlier in the bar.
func effectiveShift(pos int, shift model.Shift, carried map[int]model.Shift) model.Shift {
	if shift != model.Natural {
		carried[pos] = shift
		return shift
	}
	return carried[pos]
}
