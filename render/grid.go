package render

import (
	"strings"

	"github.com/jsphweid/sheetmusic/constants"
)

// Grid is the character picture of a staff, one byte per cell.
type Grid struct {
	cells [][]byte
}

// newGrid lays out the empty staff lines for the given number of slots.
func newGrid(slots int) *Grid {
	width := slots*constants.SlotWidth + 1
	g := &Grid{cells: make([][]byte, constants.GridRows)}
	for row := range g.cells {
		fill := byte(' ')
		if row%2 != 0 && row <= constants.LastStaffLineRow {
			fill = '-'
		}
		g.cells[row] = []byte(strings.Repeat(string(fill), width))
	}
	return g
}

func (g *Grid) Height() int {
	return len(g.cells)
}

func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the glyph at a cell, or a blank outside the grid.
func (g *Grid) At(row, col int) byte {
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return ' '
	}
	return g.cells[row][col]
}

// set drops glyphs that would land outside the grid.
func (g *Grid) set(row, col int, glyph byte) {
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return
	}
	g.cells[row][col] = glyph
}

func (g *Grid) barLine(col int) {
	for row := constants.BarLineTop; row <= constants.BarLineBottom; row++ {
		g.set(row, col, '|')
	}
}

func (g *Grid) Lines() []string {
	res := make([]string, len(g.cells))
	for i, row := range g.cells {
		res[i] = string(row)
	}
	return res
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}
