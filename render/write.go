package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/sheetmusic/staff"
	"github.com/jsphweid/sheetmusic/util"
	"github.com/pkg/errors"
)

type Options struct {
	// Clef is printed to the left of the grid, one entry per row.
	Clef   []string
	Header bool
}

func writeHeader(b *bytes.Buffer, s *staff.Staff) {
	fmt.Fprintf(b, "Title: %s\n", s.Title)
	fmt.Fprintf(b, "Author: %s\n", s.Author)
	fmt.Fprintf(b, "Time Signature (amount of whole notes in a bar): %v\n", s.Time())
	fmt.Fprintf(b, "Length in bars: %d\n\n", s.Length())
}

// Write renders the staff (tidying its rests) and writes the picture to w.
func Write(w io.Writer, s *staff.Staff, opts Options) error {
	var b bytes.Buffer
	if opts.Header {
		writeHeader(&b, s)
	}

	grid := Render(s)
	clefWidth := util.MaxLen(opts.Clef)
	for i, line := range grid.Lines() {
		if clefWidth > 0 {
			var prefix string
			if i < len(opts.Clef) {
				prefix = opts.Clef[i]
			}
			b.WriteString(prefix)
			b.WriteString(strings.Repeat(" ", clefWidth-len(prefix)))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if lyrics := LyricLine(s, clefWidth); lyrics != "" {
		b.WriteString(lyrics)
		b.WriteByte('\n')
	}

	_, err := w.Write(b.Bytes())
	return errors.Wrap(err, "write staff")
}

func String(s *staff.Staff, opts Options) string {
	var b strings.Builder
	_ = Write(&b, s, opts)
	return b.String()
}

// LoadClef reads the clef picture drawn beside each grid row.
func LoadClef(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	lines, err := util.ReadLines(path)
	if err != nil {
		return nil, errors.Wrap(err, "load clef")
	}
	return lines, nil
}
