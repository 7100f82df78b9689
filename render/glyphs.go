package render

import (
	"github.com/jsphweid/sheetmusic/constants"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
)

type stem int

const (
	stemUp stem = iota
	stemDown
)

// Stems point toward the middle of the staff.
func stemDirection(pos int) stem {
	if pos < constants.StemFlipPosition {
		return stemDown
	}
	return stemUp
}

// harmonyStemDirection keeps the harmony's stem clear of the primary's.
func harmonyStemDirection(primary, harmony int) stem {
	if primary < constants.StemFlipPosition {
		if harmony < 9 {
			return stemDown
		}
		return stemUp
	}
	if harmony > 2 {
		return stemUp
	}
	return stemDown
}

func (g *Grid) head(pos, col int, n *model.Note) {
	if n.Duration.GreaterEq(rat.Half) {
		g.set(pos, col-1, '(')
		g.set(pos, col, ')')
	} else {
		g.set(pos, col-1, '@')
		g.set(pos, col, '@')
	}
	if pos == constants.LedgerPosition {
		g.set(pos, col-2, '-')
		g.set(pos, col+1, '-')
	}
	if n.Duration.IsDotted() {
		g.set(pos, col+1, '.')
	}
}

func (g *Grid) stemAndFlag(pos, col int, n *model.Note, dir stem) {
	if !n.Duration.Less(rat.One) {
		return
	}
	for i := 1; i <= constants.StemLength; i++ {
		if dir == stemDown {
			g.set(pos+i, col-1, '|')
		} else {
			g.set(pos-i, col, '|')
		}
	}

	if !n.Duration.Less(rat.Quarter) {
		return
	}
	tip := constants.StemLength
	if dir == stemDown {
		g.set(pos+tip, col-2, '\\')
	} else {
		g.set(pos-tip, col+1, '\\')
	}
	if n.Duration.LessEq(rat.Sixteenth) {
		if dir == stemDown {
			g.set(pos+tip-1, col-2, '\\')
		} else {
			g.set(pos-tip+1, col+1, '\\')
		}
	}
}

func (g *Grid) shift(pos, col int, s model.Shift) {
	if glyph := s.Glyph(); glyph != 0 {
		g.set(pos, col-constants.ShiftOffset, glyph)
	}
}

func (g *Grid) rest(n *model.Note, col int) {
	d := n.Duration
	switch {
	case d.GreaterEq(rat.Half):
		// whole rests hang under the middle line, half rests sit on it
		row := 4
		if d.GreaterEq(rat.One) {
			row = 6
		}
		for c := col - 2; c <= col; c++ {
			g.set(row, c, '=')
			g.set(5, c, '|')
		}
	case d.GreaterEq(rat.Quarter):
		g.set(4, col, '/')
		g.set(5, col, '\\')
		g.set(6, col, '/')
		g.set(7, col, '\\')
	default:
		g.set(4, col-3, '\\')
		g.set(4, col-2, '_')
		g.set(4, col-1, '_')
		g.set(4, col, '/')
		g.set(5, col-1, '/')
		g.set(6, col-2, '/')
		if d.LessEq(rat.Sixteenth) {
			g.set(5, col-2, '_')
			g.set(5, col-3, '_')
			g.set(5, col-4, '\\')
		}
	}
	if d.IsDotted() {
		g.set(4, col+1, '.')
	}
}
