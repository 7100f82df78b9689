// Package sheet reads and writes the line-oriented #SHEETMUSIC document.
package sheet

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/pkg/errors"
)

var ErrFormat = errors.New("corrupted sheet music document")

const (
	header         = "#SHEETMUSIC"
	end            = "#END"
	sectionInfo    = "#SONG INFO"
	sectionTime    = "#TIME"
	sectionNotes   = "#NOTES"
	sectionLyrics  = "#LYRICS"
	keyTitle       = "title"
	keyAuthor      = "author"
	keySignature   = "signature"
	keyBars        = "bars"
	keyPitch       = "pitch"
	keyDuration    = "duration"
	keyHarmony     = "harmony"
	defaultLineCap = 1024 * 1024
)

type line struct {
	num  int
	text string
}

func (l line) field() (string, string) {
	key, value, _ := strings.Cut(l.text, ":")
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
}

func (l line) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrFormat, "line %d: "+format, append([]interface{}{l.num}, args...)...)
}

func readLines(r io.Reader) ([]line, error) {
	var res []line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), defaultLineCap)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		res = append(res, line{num: num, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read document")
	}
	return res, nil
}

// Decode builds a staff from a document. Sections may come in any order and
// unknown ones are skipped; a missing #END is fine but the header is not.
func Decode(r io.Reader) (*staff.Staff, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || !strings.EqualFold(lines[0].text, header) {
		return nil, errors.Wrap(ErrFormat, "missing "+header+" header")
	}

	s := staff.New()
	i := 1
	for i < len(lines) {
		head := strings.ToUpper(lines[i].text)
		if head == end {
			break
		}
		i++
		start := i
		for i < len(lines) && !strings.HasPrefix(lines[i].text, "#") {
			i++
		}
		body := lines[start:i]

		switch head {
		case sectionInfo:
			decodeInfo(s, body)
		case sectionTime:
			err = decodeTime(s, body)
		case sectionNotes:
			err = decodeNotes(s, body)
		case sectionLyrics:
			decodeLyrics(s, body)
		}
		if err != nil {
			return nil, err
		}
	}

	// a #TIME section after #NOTES still has to leave the bars balanced
	s.Straighten()
	return s, nil
}

func decodeInfo(s *staff.Staff, body []line) {
	for _, l := range body {
		switch key, value := l.field(); key {
		case keyTitle:
			s.Title = value
		case keyAuthor:
			s.Author = value
		}
	}
}

func decodeTime(s *staff.Staff, body []line) error {
	for _, l := range body {
		switch key, value := l.field(); key {
		case keySignature:
			t, err := staff.ParseTime(value)
			if err != nil {
				return l.errorf("invalid time signature %q: %v", value, err)
			}
			s.SetTime(t)
		case keyBars:
			bars, err := strconv.Atoi(value)
			if err != nil || bars < 0 {
				return l.errorf("invalid bar number %q", value)
			}
			s.SetLength(bars)
		}
	}
	return nil
}

func decodeNotes(s *staff.Staff, body []line) error {
	var notes []*model.Note
	for _, l := range body {
		key, value := l.field()
		if key != keyPitch && key != keyDuration && key != keyHarmony {
			continue
		}
		if key == keyPitch {
			p, shift, err := model.ParsePitch(value)
			if err != nil {
				return l.errorf("%v", err)
			}
			notes = append(notes, model.NewNote(p, rat.Quarter, shift))
			continue
		}

		if len(notes) == 0 {
			return l.errorf("%s before any pitch", key)
		}
		last := notes[len(notes)-1]
		switch key {
		case keyDuration:
			d, err := staff.ParseDuration(value)
			if err != nil {
				return l.errorf("invalid duration %q: %v", value, err)
			}
			last.SetDuration(d)
		case keyHarmony:
			p, shift, err := model.ParsePitch(value)
			if err != nil {
				return l.errorf("%v", err)
			}
			// off-staff harmonies and harmonies on rests are never drawn
			if p.IsRest() || last.IsRest() {
				continue
			}
			last.SetHarmony(p, shift)
		}
	}

	for _, n := range notes {
		s.AddNote(n)
	}
	return nil
}

func decodeLyrics(s *staff.Staff, body []line) {
	texts := make([]string, 0, len(body))
	for _, l := range body {
		texts = append(texts, l.text)
	}
	s.SetLyricsLine(strings.Join(texts, " "))
}
