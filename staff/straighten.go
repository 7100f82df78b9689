package staff

import "github.com/jsphweid/sheetmusic/rat"

// Straighten moves whatever does not fit in a bar to the front of the next
// one, splitting the note that crosses the bar line. Overflow can cascade,
// so the loop re-reads the bar count as bars get appended.
func (s *Staff) Straighten() {
	// a non-positive bar would overflow forever
	if s.time.Sign() <= 0 {
		return
	}
	for barNo := 0; barNo < len(s.bars); barNo++ {
		extra := s.cutOverflow(barNo)
		if len(extra) == 0 {
			continue
		}
		if barNo == len(s.bars)-1 {
			s.SetLength(len(s.bars) + 1)
		}
		next := make(Bar, 0, len(extra)+len(s.bars[barNo+1]))
		next = append(next, extra...)
		next = append(next, s.bars[barNo+1]...)
		s.bars[barNo+1] = next
	}
}

// cutOverflow removes and returns the notes that push bar barNo past the
// time signature, splitting the crossing note in two first.
func (s *Staff) cutOverflow(barNo int) Bar {
	bar := s.bars[barNo]
	var total rat.Rat
	for i, n := range bar {
		total = total.Add(n.Duration)
		if !total.Greater(s.time) {
			continue
		}

		cut := i
		difference := total.Sub(s.time)
		if difference.Less(n.Duration) {
			remainder := n.Clone()
			remainder.SetDuration(difference)
			n.SetDuration(n.Duration.Sub(difference))

			bar = append(bar, nil)
			copy(bar[i+2:], bar[i+1:])
			bar[i+1] = remainder
			cut = i + 1
		}

		extra := make(Bar, len(bar)-cut)
		copy(extra, bar[cut:])
		for j := cut; j < len(bar); j++ {
			bar[j] = nil
		}
		s.bars[barNo] = bar[:cut]
		return extra
	}
	return nil
}
