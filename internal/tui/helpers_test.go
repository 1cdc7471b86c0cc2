package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/smileynet/contacts/internal/contact"
)

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}

// firstLine returns the first line of s without ANSI escapes.
func firstLine(s string) string {
	line, _, _ := strings.Cut(ansi.Strip(s), "\n")
	return line
}

func newSizedModel(t *testing.T, store *contact.Store, opts ...ModelOption) Model {
	t.Helper()
	m := NewModel(store, opts...)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
}

// send delivers msg to m and returns the updated Model, discarding the Cmd.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// seededStore returns a store holding the given names with phones "1", "2", ...
func seededStore(names ...string) *contact.Store {
	seeds := make([]contact.Seed, len(names))
	for i, n := range names {
		seeds[i] = contact.Seed{Name: n, Phone: string(rune('1' + i))}
	}
	return contact.NewStore(contact.WithContacts(seeds))
}
