package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (m Model) prompt() string {
	switch m.current() {
	case fieldBar:
		return fmt.Sprintf("Enter the bar of the note [1 - %d]:", m.staff.Length())
	case fieldNote:
		return fmt.Sprintf("Enter the number of the note in the bar [1 - %d]:", len(m.staff.Bars()[m.barNo-1]))
	case fieldPitch:
		if m.action == actionHarmony {
			return "Enter the pitch of the harmony [cb1 - g#2]:"
		}
		return "Enter the new pitch of the note [cb1 - g#2] or 'rest':"
	case fieldDuration:
		return "Enter the new duration of the note (1/16 - 3/2):"
	case fieldTitle:
		return "Please enter the song title:"
	case fieldAuthor:
		return "Please enter the song author:"
	case fieldBars:
		return "Please enter the number of bars in the song:"
	case fieldTime:
		return "Please enter the time signature of the song:"
	case fieldLyrics:
		return "Please enter the lyrics on a single line (syllables separated by '-', words by a space):"
	}
	return ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("What would you like to do with the sheet music?"))
	b.WriteString("\n\n")
	for _, item := range menu {
		b.WriteString(item + "\n")
	}
	b.WriteString("\n" + m.rendered + "\n")

	if m.action != actionNone {
		b.WriteString(m.prompt() + "\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString(dimStyle.Render("esc: back to menu") + "\n")
	} else {
		b.WriteString(dimStyle.Render("Selection: 1-6, ctrl+c to quit") + "\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}
