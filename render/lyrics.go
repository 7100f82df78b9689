package render

import (
	"strings"

	"github.com/jsphweid/sheetmusic/constants"
	"github.com/jsphweid/sheetmusic/staff"
)

// Syllables flattens lyric words into one token per sung note. Every
// syllable but a word's last carries a trailing hyphen; the last carries a
// trailing space.
func Syllables(lyrics [][]string) []string {
	var res []string
	for _, word := range lyrics {
		for i, syl := range word {
			if i < len(word)-1 {
				res = append(res, syl+"-")
			} else {
				res = append(res, syl+" ")
			}
		}
	}
	return res
}

// LyricLine aligns syllables under the note heads, one per pitched note.
// offset is the width of whatever precedes the grid on each line.
func LyricLine(s *staff.Staff, offset int) string {
	tokens := Syllables(s.Lyrics)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", offset))
	next := 0
	for _, bar := range s.Bars() {
		b.WriteString(strings.Repeat(" ", constants.LyricBarLeadIn))
		for _, n := range bar {
			if n.IsRest() {
				b.WriteString(strings.Repeat(" ", constants.SlotWidth))
				continue
			}
			tok := tokens[next]
			b.WriteString(tok)
			// the marker takes the place of one space of padding
			if pad := constants.SlotWidth - len(tok); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			next++
			if next == len(tokens) {
				return strings.TrimRight(b.String(), " ")
			}
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}
