package staff

import (
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
)

// FillRests pads every short bar with rests of writable lengths, e.g. a
// 7/4 gap becomes 3/2 + 1/4.
func (s *Staff) FillRests() {
	for i, bar := range s.bars {
		total := AddDurations(bar)
		if !total.Less(s.time) {
			continue
		}
		s.bars[i] = append(bar, WritableRests(s.time.Sub(total))...)
	}
}

// WritableRests splits gap greedily. A remainder below the shortest
// writable length stays as it is.
func WritableRests(gap rat.Rat) []*model.Note {
	var res []*model.Note
	for !gap.IsWritable() {
		w, ok := gap.LargestWritableBelow()
		if !ok {
			break
		}
		res = append(res, model.NewRest(w))
		gap = gap.Sub(w)
	}
	return append(res, model.NewRest(gap))
}

// ReduceRests merges neighbouring rests that fit in a whole note. A merged
// rest is not looked at again in the same pass, so a run of three rests
// needs two calls.
func (s *Staff) ReduceRests() {
	for b, bar := range s.bars {
		reduced := make(Bar, 0, len(bar))
		for i := 0; i < len(bar); i++ {
			n := bar[i]
			if i+1 < len(bar) && n.IsRest() && bar[i+1].IsRest() {
				combined := n.Duration.Add(bar[i+1].Duration)
				if combined.LessEq(rat.One) {
					n.SetDuration(combined)
					i++
				}
			}
			reduced = append(reduced, n)
		}
		s.bars[b] = reduced
	}
}
