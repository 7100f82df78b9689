package staff

import (
	"testing"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholeNoteInThreeFourSpillsIntoNewBar(t *testing.T) {
	s := newStaff(rat.New(3, 4), 1)
	s.AddNote(note(2, rat.One))

	assert := assert.New(t)
	require.Equal(t, 2, s.Length())
	assert.Equal([]rat.Rat{rat.New(3, 4)}, durations(s.Bars()[0]))
	assert.Equal([]rat.Rat{rat.Quarter}, durations(s.Bars()[1]))
	assert.Equal(model.Pitched(2), s.Bars()[1][0].Pitch)
}

func TestSplitKeepsPitchAndShift(t *testing.T) {
	s := newStaff(rat.Half, 1)
	s.AddNote(model.NewNote(model.Pitched(6), rat.One, model.Sharp))

	require.Equal(t, 2, s.Length())
	first, second := s.Bars()[0][0], s.Bars()[1][0]
	assert := assert.New(t)
	assert.Equal(first.Pitch, second.Pitch)
	assert.Equal(model.Sharp, second.Shift)
	assert.Equal(rat.One, first.Duration.Add(second.Duration))
}

func TestLongNoteCascadesOverSeveralBars(t *testing.T) {
	s := newStaff(rat.Quarter, 1)
	s.AddNote(note(0, rat.One))

	require.Equal(t, 4, s.Length())
	for i, bar := range s.Bars() {
		assert.Equal(t, []rat.Rat{rat.Quarter}, durations(bar), "bar %d", i+1)
	}
}

func TestSplitCopiesHarmony(t *testing.T) {
	s := newStaff(rat.New(3, 4), 1)
	n := note(4, rat.One)
	n.SetHarmony(model.Pitched(9), model.Flat)
	s.AddNote(n)

	require.Equal(t, 2, s.Length())
	first, second := s.Bars()[0][0], s.Bars()[1][0]
	assert := assert.New(t)
	require.NotNil(t, second.Harmony)
	assert.NotSame(first.Harmony, second.Harmony)
	assert.Equal(rat.New(3, 4), first.Harmony.Duration)
	assert.Equal(rat.Quarter, second.Harmony.Duration)
	assert.Equal(model.Pitched(9), second.Harmony.Pitch)
	assert.Equal(model.Flat, second.Harmony.Shift)
}

func TestNoteStartingOnBarLineMovesWhole(t *testing.T) {
	s := newStaff(rat.One, 1)
	s.AddNote(note(0, rat.Half))
	s.AddNote(note(1, rat.Half))

	s.SetTime(rat.Half)
	s.Straighten()

	assert := assert.New(t)
	require.Equal(t, 2, s.Length())
	assert.Equal([]rat.Rat{rat.Half}, durations(s.Bars()[0]))
	assert.Equal([]rat.Rat{rat.Half}, durations(s.Bars()[1]))
	assert.Equal(model.Pitched(1), s.Bars()[1][0].Pitch)
}

func TestOverflowIsPrependedInOrder(t *testing.T) {
	s := newStaff(rat.One, 2)
	for i := 0; i < 4; i++ {
		s.AddNote(note(i, rat.Quarter))
	}
	s.AddNote(note(9, rat.Half))

	// 1/4 -> 1/2 on the first note pushes the fourth quarter over
	s.Bars()[0][0].SetDuration(rat.Half)
	s.Straighten()

	assert := assert.New(t)
	require.Equal(t, 2, s.Length())
	assert.Len(s.Bars()[0], 3)
	assert.Equal(model.Pitched(3), s.Bars()[1][0].Pitch)
	assert.Equal(model.Pitched(9), s.Bars()[1][1].Pitch)
}

func TestOverflowAndSplitTogether(t *testing.T) {
	s := newStaff(rat.One, 1)
	s.AddNote(note(0, rat.Half))
	s.AddNote(note(1, rat.Half))

	// grows the first note so the second crosses the bar line
	s.Bars()[0][0].SetDuration(rat.New(3, 4))
	s.Straighten()

	assert := assert.New(t)
	require.Equal(t, 2, s.Length())
	assert.Equal([]rat.Rat{rat.New(3, 4), rat.Quarter}, durations(s.Bars()[0]))
	assert.Equal([]rat.Rat{rat.Quarter}, durations(s.Bars()[1]))
	assert.Equal(model.Pitched(1), s.Bars()[1][0].Pitch)
}

func TestStraightenIgnoresNonPositiveTime(t *testing.T) {
	s := newStaff(rat.One, 1)
	s.AddNote(note(0, rat.One))
	s.SetTime(rat.Zero)
	s.Straighten()
	assert.Equal(t, 1, s.Length())
}
