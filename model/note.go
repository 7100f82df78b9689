package model

import "github.com/jsphweid/sheetmusic/rat"

type Shift int8

const (
	Flat    Shift = -1
	Natural Shift = 0
	Sharp   Shift = 1
)

// Glyph is the accidental drawn in front of a head, 0 for Natural.
func (s Shift) Glyph() byte {
	switch {
	case s > 0:
		return '#'
	case s < 0:
		return 'b'
	}
	return 0
}

// Note is one note or rest on the staff. Harmony, when set, sounds together
// with the note, is owned by it and never has a harmony of its own.
type Note struct {
	Pitch    Pitch
	Duration rat.Rat
	Shift    Shift
	Harmony  *Note
}

func NewNote(p Pitch, d rat.Rat, s Shift) *Note {
	return &Note{Pitch: p, Duration: d, Shift: s}
}

func NewRest(d rat.Rat) *Note {
	return &Note{Pitch: Rest, Duration: d}
}

func (n *Note) IsRest() bool {
	return n.Pitch.IsRest()
}

// SetDuration keeps the harmony the same length as its owner.
func (n *Note) SetDuration(d rat.Rat) {
	n.Duration = d
	if n.Harmony != nil {
		n.Harmony.Duration = d
	}
}

// SetHarmony attaches a harmony with the owner's duration.
func (n *Note) SetHarmony(p Pitch, s Shift) {
	n.Harmony = &Note{Pitch: p, Duration: n.Duration, Shift: s}
}

func (n *Note) Clone() *Note {
	c := *n
	if n.Harmony != nil {
		h := *n.Harmony
		h.Harmony = nil
		c.Harmony = &h
	}
	return &c
}
