package server

import (
	"strings"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/sheet"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/pkg/errors"
)

func applyEdit(s *staff.Staff, e model.Edit) error {
	switch e.Op {
	case model.OpModify:
		return s.ModifyNote(e.Bar, e.Note, e.Pitch, e.Duration)
	case model.OpHarmony:
		return s.AddHarmony(e.Bar, e.Note, e.Pitch)
	case model.OpInfo:
		return s.EditInfo(e.Title, e.Author, e.Time, e.Bars)
	case model.OpLyrics:
		s.SetLyricsLine(e.Lyrics)
		return nil
	}
	return errors.Wrapf(staff.ErrInvalidArgument, "unknown op %q", e.Op)
}

// applyEdits runs the edits in order and stops at the first failure.
func applyEdits(req model.EditRequest, opts render.Options) (model.EditResponse, error) {
	s, err := sheet.Decode(strings.NewReader(req.Document))
	if err != nil {
		return model.EditResponse{}, err
	}
	for i, e := range req.Edits {
		if err := applyEdit(s, e); err != nil {
			return model.EditResponse{}, errors.Wrapf(err, "edit %d (%s)", i+1, e.Op)
		}
	}

	// encode before rendering fills the bars with rests
	doc := sheet.String(s)
	return model.EditResponse{Document: doc, Rendered: render.String(s, opts)}, nil
}
