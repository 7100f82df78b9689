package model

const (
	OpModify  = "modify"
	OpHarmony = "harmony"
	OpInfo    = "info"
	OpLyrics  = "lyrics"
)

// Edit is one staff edit. Bar and Note are 1-based.
type Edit struct {
	Op       string `json:"op" validate:"required,oneof=modify harmony info lyrics"`
	Bar      int    `json:"bar,omitempty" validate:"required_if=Op modify,required_if=Op harmony,gte=0"`
	Note     int    `json:"note,omitempty" validate:"required_if=Op modify,required_if=Op harmony,gte=0"`
	Pitch    string `json:"pitch,omitempty" validate:"required_if=Op modify,required_if=Op harmony"`
	Duration string `json:"duration,omitempty" validate:"required_if=Op modify"`
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Time     string `json:"time,omitempty" validate:"required_if=Op info"`
	Bars     int    `json:"bars,omitempty" validate:"gte=0"`
	Lyrics   string `json:"lyrics,omitempty"`
}

type EditRequest struct {
	Document string `json:"document" validate:"required"`
	Edits    []Edit `json:"edits" validate:"dive"`
}

type EditResponse struct {
	Document string `json:"document"`
	Rendered string `json:"rendered"`
}

type ErrorResponse struct {
	Error  string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}
