package rat

// Writable lists the durations the renderer can draw as a single glyph,
// in the order the rest filler tries them.
var Writable = []Rat{
	New(3, 2),
	New(1, 1),
	New(3, 4),
	New(1, 2),
	New(3, 8),
	New(1, 4),
	New(3, 16),
	New(1, 8),
	New(1, 16),
}

var dotted = map[Rat]bool{
	New(3, 16): true,
	New(3, 8):  true,
	New(3, 4):  true,
	New(3, 2):  true,
}

var (
	DottedWhole = New(3, 2)
	Half        = New(1, 2)
	Quarter     = New(1, 4)
	Sixteenth   = New(1, 16)
)

func (r Rat) IsWritable() bool {
	for _, w := range Writable {
		if w == r {
			return true
		}
	}
	return false
}

func (r Rat) IsDotted() bool {
	return dotted[r]
}

// LargestWritableBelow returns the largest writable duration strictly less
// than r, or false when r is no larger than the smallest one.
func (r Rat) LargestWritableBelow() (Rat, bool) {
	for _, w := range Writable {
		if w.Less(r) {
			return w, true
		}
	}
	return Rat{}, false
}
