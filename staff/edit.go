package staff

import (
	"strings"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
	"github.com/pkg/errors"
)

// ParseDuration reads "1/4" or "0.25" style durations. A single note lasts
// from a sixteenth up to a dotted whole.
func ParseDuration(s string) (rat.Rat, error) {
	d, err := rat.Parse(s)
	if err != nil {
		return rat.Rat{}, err
	}
	if d.Less(rat.Sixteenth) || d.Greater(rat.DottedWhole) {
		return rat.Rat{}, errors.Wrapf(ErrInvalidArgument, "duration %v is not between %v and %v", d, rat.Sixteenth, rat.DottedWhole)
	}
	return d, nil
}

// ModifyNote replaces pitch and duration of a note. Turning a note into a
// rest drops its harmony.
func (s *Staff) ModifyNote(barNo, noteNo int, pitch, duration string) error {
	n, err := s.Note(barNo, noteNo)
	if err != nil {
		return err
	}
	p, shift, err := model.ParsePitch(pitch)
	if err != nil {
		return err
	}
	d, err := ParseDuration(duration)
	if err != nil {
		return err
	}

	n.Pitch = p
	n.Shift = shift
	if p.IsRest() {
		n.Shift = model.Natural
		n.Harmony = nil
	}
	n.SetDuration(d)

	s.Straighten()
	return nil
}

// AddHarmony sets (or replaces) the harmony of a note; it takes over the
// note's duration.
func (s *Staff) AddHarmony(barNo, noteNo int, pitch string) error {
	n, err := s.Note(barNo, noteNo)
	if err != nil {
		return err
	}
	if n.IsRest() {
		return errors.Wrapf(ErrInvalidArgument, "bar %d note %d is a rest", barNo, noteNo)
	}
	p, shift, err := model.ParsePitch(pitch)
	if err != nil {
		return err
	}
	if p.IsRest() {
		return errors.Wrapf(ErrInvalidArgument, "harmony %q is not on the staff", pitch)
	}
	n.SetHarmony(p, shift)
	return nil
}

// EditInfo updates the song info and rebalances the bars for the new time.
func (s *Staff) EditInfo(title, author, time string, bars int) error {
	t, err := ParseTime(time)
	if err != nil {
		return err
	}
	if bars < 0 {
		return errors.Wrapf(ErrInvalidArgument, "bar count %d", bars)
	}

	s.Title = title
	s.Author = author
	s.SetLength(bars)
	s.SetTime(t)
	s.Straighten()
	return nil
}

// ParseTime reads a time signature as "3/4" or "0.75" whole notes.
func ParseTime(time string) (rat.Rat, error) {
	t, err := rat.Parse(time)
	if err != nil {
		return rat.Rat{}, err
	}
	if t.Sign() <= 0 {
		return rat.Rat{}, errors.Wrapf(ErrInvalidArgument, "time signature %v must be positive", t)
	}
	return t, nil
}

// ParseLyrics splits words on whitespace and syllables on '-'.
func ParseLyrics(line string) [][]string {
	var words [][]string
	for _, word := range strings.Fields(line) {
		var syllables []string
		for _, syl := range strings.Split(word, "-") {
			if syl != "" {
				syllables = append(syllables, syl)
			}
		}
		if len(syllables) > 0 {
			words = append(words, syllables)
		}
	}
	return words
}

// SetLyricsLine replaces the lyrics with a single line of text.
func (s *Staff) SetLyricsLine(line string) {
	s.SetLyrics(ParseLyrics(line))
}
