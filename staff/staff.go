// Package staff holds the bar/note model and keeps every bar exactly one
// time signature long.
package staff

import (
	"github.com/jsphweid/sheetmusic/constants"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
	"github.com/jsphweid/sheetmusic/util"
	"github.com/pkg/errors"
)

var (
	ErrIndex           = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Bar is a run of notes in temporal order.
type Bar []*model.Note

// Staff is owned by a single caller; nothing here is safe for concurrent use.
type Staff struct {
	Title  string
	Author string
	// Lyrics holds words, each split into syllables.
	Lyrics [][]string

	time rat.Rat
	bars []Bar
}

// New returns an empty 4 bar staff in 4/4.
func New() *Staff {
	s := &Staff{time: rat.One}
	s.SetLength(constants.DefaultBars)
	return s
}

func (s *Staff) Time() rat.Rat {
	return s.time
}

// SetTime does not rebalance existing bars; call Straighten for that.
func (s *Staff) SetTime(t rat.Rat) {
	s.time = t
}

func (s *Staff) Length() int {
	return len(s.bars)
}

// Bars exposes the bars for reading.
func (s *Staff) Bars() []Bar {
	return s.bars
}

// SetLength drops or appends trailing bars so there are exactly n.
func (s *Staff) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(s.bars) {
		for i := n; i < len(s.bars); i++ {
			s.bars[i] = nil
		}
		s.bars = s.bars[:n]
		return
	}
	for len(s.bars) < n {
		s.bars = append(s.bars, Bar{})
	}
}

func (s *Staff) SetLyrics(words [][]string) {
	s.Lyrics = words
}

// AddNote appends n to the first bar that still has room, growing the
// staff when every bar is full, and straightens the result.
func (s *Staff) AddNote(n *model.Note) {
	barNo := 0
	for barNo < len(s.bars) && AddDurations(s.bars[barNo]).GreaterEq(s.time) {
		barNo++
	}
	if barNo == len(s.bars) {
		s.SetLength(len(s.bars) + 1)
	}
	s.bars[barNo] = append(s.bars[barNo], n)
	s.Straighten()
}

// Note returns a note by 1-based bar and note numbers.
func (s *Staff) Note(barNo, noteNo int) (*model.Note, error) {
	if barNo < 1 || barNo > len(s.bars) {
		return nil, errors.Wrapf(ErrIndex, "bar %d of %d", barNo, len(s.bars))
	}
	bar := s.bars[barNo-1]
	if noteNo < 1 || noteNo > len(bar) {
		return nil, errors.Wrapf(ErrIndex, "note %d of %d in bar %d", noteNo, len(bar), barNo)
	}
	return bar[noteNo-1], nil
}

// NumNotes counts notes and rests over all bars.
func (s *Staff) NumNotes() int {
	lengths := make([]int, 0, len(s.bars))
	for _, bar := range s.bars {
		lengths = append(lengths, len(bar))
	}
	return int(util.Sum(lengths))
}

func AddDurations(bar Bar) rat.Rat {
	var total rat.Rat
	for _, n := range bar {
		total = total.Add(n.Duration)
	}
	return total
}

func (b Bar) Duration() rat.Rat {
	return AddDurations(b)
}
