package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPitch = errors.New("invalid pitch")

// Number of notated staff positions, g2 (0) down to c1 (11).
const NumPositions = 12

// Pitch is either a staff position or a rest. The zero value is a rest.
type Pitch struct {
	position uint8
	pitched  bool
}

var Rest = Pitch{}

// Pitched panics when position is off the staff.
func Pitched(position int) Pitch {
	if position < 0 || position >= NumPositions {
		panic(fmt.Sprintf("model: staff position %d out of range", position))
	}
	return Pitch{position: uint8(position), pitched: true}
}

func (p Pitch) IsRest() bool {
	return !p.pitched
}

// Position reports the staff position (0 = highest) and false for rests.
func (p Pitch) Position() (int, bool) {
	return int(p.position), p.pitched
}

func (p Pitch) String() string {
	return p.Name(Natural)
}

// letters from g downwards, as they climb the staff from the top
const letters = "gfedcba"

// ParsePitch reads names like "c1", "g#2", "bb" or "rest". The octave
// defaults to 1. Well-formed names that fall outside the staff are rests.
func ParsePitch(name string) (Pitch, Shift, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "rest" || s == "r" {
		return Rest, Natural, nil
	}
	if s == "" {
		return Rest, Natural, errors.Wrap(ErrInvalidPitch, "empty pitch")
	}

	idx := strings.IndexByte(letters, s[0])
	if idx < 0 {
		return Rest, Natural, errors.Wrapf(ErrInvalidPitch, "%q", name)
	}
	rest := s[1:]

	shift := Natural
	if strings.HasPrefix(rest, "#") {
		shift = Sharp
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "b") {
		shift = Flat
		rest = rest[1:]
	}

	octave := 1
	switch len(rest) {
	case 0:
	case 1:
		if rest[0] < '0' || rest[0] > '9' {
			return Rest, Natural, errors.Wrapf(ErrInvalidPitch, "%q", name)
		}
		octave = int(rest[0] - '0')
	default:
		return Rest, Natural, errors.Wrapf(ErrInvalidPitch, "%q", name)
	}

	// a and b sit above g of the same octave number
	if idx > 4 {
		octave++
	}
	position := idx + 7*(2-octave)
	if position < 0 || position >= NumPositions {
		return Rest, Natural, nil
	}
	return Pitched(position), shift, nil
}

// Name is the inverse of ParsePitch.
func (p Pitch) Name(shift Shift) string {
	if !p.pitched {
		return "rest"
	}
	pos := int(p.position)
	octave := 2 - pos/7
	idx := pos % 7
	if idx > 4 {
		octave--
	}
	var b strings.Builder
	b.WriteByte(letters[idx])
	switch shift {
	case Sharp:
		b.WriteByte('#')
	case Flat:
		b.WriteByte('b')
	}
	fmt.Fprintf(&b, "%d", octave)
	return b.String()
}
