package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/pkg/errors"
)

// Encode writes the staff as a document that Decode reads back into the
// same bars. Gaps in bars followed by more music are written out as rests.
func Encode(w io.Writer, s *staff.Staff) error {
	var b bytes.Buffer
	b.WriteString(header + "\n")

	fmt.Fprintf(&b, "%s\n%s: %s\n%s: %s\n\n", sectionInfo, keyTitle, s.Title, keyAuthor, s.Author)
	fmt.Fprintf(&b, "%s\n%s: %v\n%s: %d\n\n", sectionTime, keySignature, s.Time(), keyBars, s.Length())

	b.WriteString(sectionNotes + "\n")
	bars := s.Bars()
	lastUsed := -1
	for i, bar := range bars {
		if len(bar) > 0 {
			lastUsed = i
		}
	}
	for i := 0; i <= lastUsed; i++ {
		for _, n := range bars[i] {
			writeNote(&b, n)
		}
		if i == lastUsed {
			break
		}
		if gap := s.Time().Sub(bars[i].Duration()); gap.Sign() > 0 {
			for _, r := range staff.WritableRests(gap) {
				writeNote(&b, r)
			}
		}
	}

	if len(s.Lyrics) > 0 {
		words := make([]string, 0, len(s.Lyrics))
		for _, word := range s.Lyrics {
			words = append(words, strings.Join(word, "-"))
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", sectionLyrics, strings.Join(words, " "))
	}
	b.WriteString(end + "\n")

	_, err := w.Write(b.Bytes())
	return errors.Wrap(err, "could not write document")
}

func writeNote(b *bytes.Buffer, n *model.Note) {
	fmt.Fprintf(b, "%s: %s\n", keyPitch, n.Pitch.Name(n.Shift))
	fmt.Fprintf(b, "%s: %v\n", keyDuration, n.Duration)
	if h := n.Harmony; h != nil {
		fmt.Fprintf(b, "%s: %s\n", keyHarmony, h.Pitch.Name(h.Shift))
	}
}

func String(s *staff.Staff) string {
	var b strings.Builder
	_ = Encode(&b, s)
	return b.String()
}
