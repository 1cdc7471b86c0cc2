package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form labels and submit caption.
const (
	LabelName   = "Nombre"
	LabelPhone  = "Teléfono"
	SubmitLabel = "Añadir Contacto"
)

// formField identifies the focused element of the add-contact form.
type formField int

const (
	fieldName   formField = iota // Name text input.
	fieldPhone                   // Phone text input.
	fieldSubmit                  // Submit control.
)

// formHeight is the number of lines the form occupies when rendered.
const formHeight = 7

// form holds the transient text buffers of the add-contact form.
// It lives only while the form is shown and is never part of the store.
type form struct {
	name  textinput.Model
	phone textinput.Model
	field formField
}

// newForm returns an empty form with the name field focused.
func newForm() form {
	name := textinput.New()
	name.Prompt = "› "
	name.Placeholder = LabelName
	name.CharLimit = 64

	phone := textinput.New()
	phone.Prompt = "› "
	phone.Placeholder = LabelPhone
	phone.CharLimit = 32

	f := form{name: name, phone: phone}
	f, _ = f.focus(fieldName)
	return f
}

// focus moves focus to the given field, blurring the others.
func (f form) focus(field formField) (form, tea.Cmd) {
	f.field = field
	f.name.Blur()
	f.phone.Blur()
	switch field {
	case fieldName:
		return f, f.name.Focus()
	case fieldPhone:
		return f, f.phone.Focus()
	}
	return f, nil
}

// blur removes focus from both inputs, keeping the buffers.
func (f form) blur() form {
	f.name.Blur()
	f.phone.Blur()
	return f
}

// values returns the current buffer contents.
func (f form) values() (name, phone string) {
	return f.name.Value(), f.phone.Value()
}

// clear empties both buffers and returns focus to the name field.
func (f form) clear() (form, tea.Cmd) {
	f.name.SetValue("")
	f.phone.SetValue("")
	return f.focus(fieldName)
}

// update forwards msg to the focused text input.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.field {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldPhone:
		f.phone, cmd = f.phone.Update(msg)
	}
	return f, cmd
}

// View renders the form. focused is false when the list holds focus.
func (f form) View(width int, focused bool) string {
	var b strings.Builder
	inputWidth := width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.name.Width = inputWidth
	f.phone.Width = inputWidth

	b.WriteString(labelStyle.Render(LabelName))
	b.WriteByte('\n')
	b.WriteString(f.name.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(LabelPhone))
	b.WriteByte('\n')
	b.WriteString(f.phone.View())
	b.WriteString("\n\n")

	btn := buttonStyle
	if focused && f.field == fieldSubmit {
		btn = activeButtonStyle
	}
	b.WriteString(btn.Render(SubmitLabel))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
