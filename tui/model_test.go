package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/rat"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func reply(m Model, text string) Model {
	return send(m, keys(text), enter)
}

func newModel(t *testing.T) Model {
	return New(staff.New(), render.Options{Header: true}, filepath.Join(t.TempDir(), "out.txt"))
}

func TestStartsOnMenuWithRender(t *testing.T) {
	m := newModel(t)

	assert := assert.New(t)
	assert.Contains(m.View(), "1. Modify a note")
	assert.Contains(m.View(), "Length in bars: 4")
	// the first render filled every bar with a whole rest
	assert.Len(m.staff.Bars()[0], 1)
}

func TestModifyNoteSkipsNotePromptForLoneNote(t *testing.T) {
	m := send(newModel(t), keys("1"))
	assert.Contains(t, m.View(), "Enter the bar of the note [1 - 4]:")

	m = reply(m, "1")
	assert.Contains(t, m.View(), "or 'rest'")
	m = reply(m, "g1")
	m = reply(m, "1/2")

	assert := assert.New(t)
	assert.Equal(actionNone, m.action)
	assert.Equal("Done.", m.status)
	n := m.staff.Bars()[0][0]
	assert.Equal(model.Pitched(7), n.Pitch)
	assert.Equal(rat.Half, n.Duration)
	assert.Len(m.staff.Bars()[0], 2)
}

func TestModifyNoteAsksForNoteInBusyBar(t *testing.T) {
	m := send(newModel(t), keys("1"))
	m = reply(m, "1")
	m = reply(m, "e1")
	m = reply(m, "1/4")

	m = send(m, keys("1"))
	m = reply(m, "1")
	assert.Contains(t, m.View(), "Enter the number of the note in the bar [1 - 2]:")

	m = reply(m, "3")
	assert.Equal(t, fieldNote, m.current())
	assert.Contains(t, m.err, "not a note number")

	m = reply(m, "2")
	m = reply(m, "f1")
	m = reply(m, "3/4")
	assert.Equal(t, model.Pitched(8), m.staff.Bars()[0][1].Pitch)
}

func TestBadBarRePrompts(t *testing.T) {
	m := send(newModel(t), keys("2"))
	m = reply(m, "9")

	assert := assert.New(t)
	assert.Equal(actionHarmony, m.action)
	assert.Equal(0, m.step)
	assert.Contains(m.View(), "\"9\" is not a bar number")
}

func TestHarmonyOnRestShowsError(t *testing.T) {
	m := send(newModel(t), keys("2"))
	m = reply(m, "2")
	m = reply(m, "e1")

	assert := assert.New(t)
	assert.Equal(actionNone, m.action)
	assert.True(strings.HasPrefix(m.err, "Invalid input: "))
	assert.Nil(m.staff.Bars()[1][0].Harmony)
}

func TestEditInfo(t *testing.T) {
	m := send(newModel(t), keys("3"))
	m = reply(m, "Song")
	m = reply(m, "Me")
	m = reply(m, "many")
	assert.Equal(t, fieldBars, m.current())

	m = reply(m, "2")
	m = reply(m, "1/2")

	assert := assert.New(t)
	assert.Equal("Song", m.staff.Title)
	assert.Equal("Me", m.staff.Author)
	assert.Equal(rat.Half, m.staff.Time())
	assert.Contains(m.View(), "Title: Song")
}

func TestLyrics(t *testing.T) {
	m := send(newModel(t), keys("4"))
	m = reply(m, "la-la la")
	assert.Equal(t, [][]string{{"la", "la"}, {"la"}}, m.staff.Lyrics)
}

func TestEscapeReturnsToMenu(t *testing.T) {
	m := send(newModel(t), keys("3"), keys("abc"), tea.KeyMsg{Type: tea.KeyEsc})

	assert := assert.New(t)
	assert.Equal(actionNone, m.action)
	assert.Equal("", m.input.Value())
	assert.Equal("", m.staff.Title)
}

func TestSave(t *testing.T) {
	m := send(newModel(t), keys("5"))

	data, err := os.ReadFile(m.output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Title: \n"))
	assert.Contains(t, m.View(), "Sheet music written to")
}

func TestInvalidSelectionAndQuit(t *testing.T) {
	m := send(newModel(t), keys("x"))
	assert.Contains(t, m.err, "Invalid selection")

	next, cmd := m.Update(keys("6"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
