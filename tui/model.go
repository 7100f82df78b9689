// Package tui is the interactive editor: a menu of edits over a staff that
// is re-rendered after every change.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/pkg/errors"
)

type action int

const (
	actionNone action = iota
	actionModify
	actionHarmony
	actionInfo
	actionLyrics
)

type field int

const (
	fieldBar field = iota
	fieldNote
	fieldPitch
	fieldDuration
	fieldTitle
	fieldAuthor
	fieldBars
	fieldTime
	fieldLyrics
)

var actionFields = map[action][]field{
	actionModify:  {fieldBar, fieldNote, fieldPitch, fieldDuration},
	actionHarmony: {fieldBar, fieldNote, fieldPitch},
	actionInfo:    {fieldTitle, fieldAuthor, fieldBars, fieldTime},
	actionLyrics:  {fieldLyrics},
}

var menu = []string{
	"1. Modify a note",
	"2. Add a harmony note",
	"3. Edit song info",
	"4. Modify lyrics",
	"5. Save to file",
	"6. Exit",
}

type Model struct {
	staff    *staff.Staff
	opts     render.Options
	output   string
	input    textinput.Model
	rendered string

	action  action
	step    int
	answers map[field]string
	barNo   int
	noteNo  int

	status   string
	err      string
	quitting bool
}

func NewInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	return ti
}

// New starts the editor on s. Saving writes the render to output.
func New(s *staff.Staff, opts render.Options, output string) Model {
	m := Model{
		staff:  s,
		opts:   opts,
		output: output,
		input:  NewInput(),
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.rendered = render.String(m.staff, m.opts)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blinks
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.action == actionNone {
		return m.updateMenu(key)
	}

	switch key.Type {
	case tea.KeyEsc:
		m.toMenu()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.answer(value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	switch key.String() {
	case "1":
		m.start(actionModify)
	case "2":
		m.start(actionHarmony)
	case "3":
		m.start(actionInfo)
	case "4":
		m.start(actionLyrics)
	case "5":
		if err := m.save(); err != nil {
			m.err = err.Error()
		} else {
			m.status = fmt.Sprintf("Sheet music written to %s", m.output)
		}
	case "6", "q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.err = fmt.Sprintf("Invalid selection %q. Try again.", key.String())
	}
	return m, nil
}

func (m *Model) start(a action) {
	m.action = a
	m.step = 0
	m.answers = make(map[field]string)
	m.status = ""
	m.err = ""
}

func (m *Model) toMenu() {
	m.action = actionNone
	m.step = 0
	m.answers = nil
	m.input.Reset()
}

func (m *Model) current() field {
	return actionFields[m.action][m.step]
}

func readIndex(value string, limit int) (int, bool) {
	n, err := strconv.Atoi(value)
	return n, err == nil && n >= 1 && n <= limit
}

// answer records the reply to the current prompt, or leaves the prompt up
// with an error when the reply is out of range.
func (m *Model) answer(value string) {
	m.err = ""
	switch f := m.current(); f {
	case fieldBar:
		n, ok := readIndex(value, m.staff.Length())
		if !ok {
			m.err = fmt.Sprintf("%q is not a bar number", value)
			return
		}
		if len(m.staff.Bars()[n-1]) == 0 {
			m.err = fmt.Sprintf("bar %d has no notes", n)
			return
		}
		m.barNo = n
	case fieldNote:
		n, ok := readIndex(value, len(m.staff.Bars()[m.barNo-1]))
		if !ok {
			m.err = fmt.Sprintf("%q is not a note number", value)
			return
		}
		m.noteNo = n
	case fieldBars:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			m.err = fmt.Sprintf("%q is not a bar count", value)
			return
		}
		m.answers[f] = value
	default:
		m.answers[f] = value
	}

	m.step++
	// a single note needs no choosing
	if m.step < len(actionFields[m.action]) && m.current() == fieldNote && len(m.staff.Bars()[m.barNo-1]) == 1 {
		m.noteNo = 1
		m.step++
	}
	if m.step == len(actionFields[m.action]) {
		m.apply()
	}
}

func (m *Model) apply() {
	a := m.answers
	var err error
	switch m.action {
	case actionModify:
		err = m.staff.ModifyNote(m.barNo, m.noteNo, a[fieldPitch], a[fieldDuration])
	case actionHarmony:
		err = m.staff.AddHarmony(m.barNo, m.noteNo, a[fieldPitch])
	case actionInfo:
		bars, _ := strconv.Atoi(a[fieldBars])
		err = m.staff.EditInfo(a[fieldTitle], a[fieldAuthor], a[fieldTime], bars)
	case actionLyrics:
		m.staff.SetLyricsLine(a[fieldLyrics])
	}
	m.toMenu()
	if err != nil {
		m.err = "Invalid input: " + err.Error()
		return
	}
	m.status = "Done."
	m.refresh()
}

func (m *Model) save() error {
	f, err := os.Create(m.output)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", m.output)
	}
	if err := render.Write(f, m.staff, m.opts); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "could not close %v", m.output)
}
