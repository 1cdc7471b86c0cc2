// Package tui implements the contacts screen: a Bubble Tea model that renders
// the contact store and forwards key presses into store operations, plus a
// non-interactive printer for piped output.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// barsHeight is the number of lines used by the top bar, floating action
// line and bottom bar. The help bar is measured on each render.
const barsHeight = 3

// Focus represents which part of the screen receives key presses.
type Focus int

const (
	FocusList Focus = iota // Contact cards have focus.
	FocusForm              // Add-contact form has focus.
)

// Model is the root Bubble Tea model for the contacts screen.
// The store is the only authoritative state; Model keeps just the cursor,
// focus and the transient form buffers.
type Model struct {
	store    *contact.Store
	titles   Titles
	form     form
	focus    Focus
	cursor   int
	width    int
	height   int
	help     help.Model
	listKeys listKeys
	formKeys formKeys
}

// ModelOption configures optional Model behavior.
type ModelOption func(*Model)

// WithTitles overrides the top bar titles.
func WithTitles(t Titles) ModelOption {
	return func(m *Model) {
		m.titles = t
	}
}

// NewModel creates a Model over store. If the store already shows the form,
// the form starts focused.
func NewModel(store *contact.Store, opts ...ModelOption) Model {
	m := Model{
		store:    store,
		titles:   DefaultTitles(),
		help:     help.New(),
		listKeys: ListKeyMap(),
		formKeys: FormKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if store.ShowAddForm() {
		m.form = newForm()
		m.focus = FocusForm
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with focus-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == FocusForm && m.store.ShowAddForm() {
			return m.handleFormKey(msg)
		}
		return m.handleListKey(msg)
	}

	// Cursor blink and other input messages go to the focused text input.
	if m.focus == FocusForm && m.store.ShowAddForm() {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleListKey processes keys while the contact cards have focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.store.Visible()

	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.listKeys.Up):
		if len(visible) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(visible) - 1
			}
		}

	case key.Matches(msg, m.listKeys.Down):
		if len(visible) > 0 {
			m.cursor++
			if m.cursor >= len(visible) {
				m.cursor = 0
			}
		}

	case key.Matches(msg, m.listKeys.Toggle):
		if m.cursor >= 0 && m.cursor < len(visible) {
			m.store.ToggleFavorite(visible[m.cursor].ID)
		}

	case key.Matches(msg, m.listKeys.All):
		m.store.SetViewMode(false)

	case key.Matches(msg, m.listKeys.Favorites):
		m.store.SetViewMode(true)

	case key.Matches(msg, m.listKeys.Add):
		return m.toggleForm()

	case key.Matches(msg, m.listKeys.Form):
		if m.store.ShowAddForm() {
			return m.focusForm(fieldName)
		}

	case key.Matches(msg, m.listKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	return m, nil
}

// handleFormKey processes keys while the add-contact form has focus.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.store.SetShowAddForm(false)
		m.form = form{}
		m.focus = FocusList
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		if m.form.field == fieldSubmit {
			m.form = m.form.blur()
			m.focus = FocusList
			return m, nil
		}
		return m.focusForm(m.form.field + 1)

	case key.Matches(msg, m.formKeys.Prev):
		if m.form.field == fieldName {
			m.form = m.form.blur()
			m.focus = FocusList
			return m, nil
		}
		return m.focusForm(m.form.field - 1)

	case key.Matches(msg, m.formKeys.Submit):
		if m.form.field == fieldName {
			return m.focusForm(fieldPhone)
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// toggleForm flips form visibility. A newly shown form starts empty and
// focused; a hidden form's buffers are discarded.
func (m Model) toggleForm() (tea.Model, tea.Cmd) {
	m.store.ToggleShowAddForm()
	if !m.store.ShowAddForm() {
		m.form = form{}
		m.focus = FocusList
		return m, nil
	}
	m.form = newForm()
	return m.focusForm(fieldName)
}

func (m Model) focusForm(field formField) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.focus(field)
	m.focus = FocusForm
	return m, cmd
}

// submit hands the buffers to the store. Buffers are cleared only when the
// store accepts the contact; a rejected submit leaves everything untouched.
func (m Model) submit() (tea.Model, tea.Cmd) {
	name, phone := m.form.values()
	if _, ok := m.store.Add(name, phone); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.clear()
	return m, cmd
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.store.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// bodyHeight returns the lines left for the form and cards once the bars
// and the help bar, which grows when full help is shown, are accounted for.
func (m Model) bodyHeight() int {
	h := m.height - barsHeight - lipgloss.Height(m.help.View(m.helpKeys()))
	if h < 1 {
		return 1
	}
	return h
}

// View renders top bar, optional form, contact cards, floating action
// control, bottom bar and help bar. It re-reads the store on every call.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	favoritesOnly := m.store.ShowFavoritesOnly()
	body := m.viewBody(favoritesOnly)

	return lipgloss.JoinVertical(lipgloss.Left,
		topBar(m.titles.Title(favoritesOnly), m.width),
		body,
		fab(m.width),
		bottomBar(favoritesOnly, m.width),
		m.help.View(m.helpKeys()),
	)
}

// viewBody renders the form (when shown) and the cards, padded to bodyHeight.
func (m Model) viewBody(favoritesOnly bool) string {
	height := m.bodyHeight()
	var sections []string

	if m.store.ShowAddForm() {
		sections = append(sections, m.form.View(m.width, m.focus == FocusForm))
		height -= formHeight + 1
	}

	visible := m.store.Visible()
	if len(visible) == 0 {
		sections = append(sections, mutedText.Render("  "+emptyText(favoritesOnly)))
	} else {
		sections = append(sections, renderCards(visible, m.cursor, CardWidth(m.width), height, m.focus == FocusList))
	}

	body := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)
}

// helpKeys returns the help.KeyMap for the focused area.
func (m Model) helpKeys() help.KeyMap {
	if m.focus == FocusForm && m.store.ShowAddForm() {
		return m.formKeys
	}
	return m.listKeys
}

// Cursor returns the index of the selected card within the visible list.
func (m Model) Cursor() int { return m.cursor }

// Focus returns which area receives key presses.
func (m Model) Focus() Focus { return m.focus }
