package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/contacts/internal/contact"
)

// printWidth is the card width used when printing outside the screen.
const printWidth = 48

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintOptions configures PrintContacts.
type PrintOptions struct {
	Title         string // Top bar title in styled mode
	FavoritesOnly bool   // Selects the empty-state text
	Plain         bool   // Tab-separated lines instead of cards
}

// PrintContacts writes contacts to w. In plain mode each contact is one
// tab-separated line "name<TAB>phone<TAB>favorite", with favorite "*" or
// empty; otherwise the title bar and cards are rendered as on screen.
func PrintContacts(w io.Writer, contacts []contact.Contact, opts PrintOptions) error {
	if opts.Plain {
		return printPlain(w, contacts)
	}

	var b strings.Builder
	b.WriteString(topBar(opts.Title, printWidth))
	b.WriteByte('\n')
	if len(contacts) == 0 {
		b.WriteString(mutedText.Render("  " + emptyText(opts.FavoritesOnly)))
	} else {
		cards := make([]string, len(contacts))
		for i, c := range contacts {
			cards[i] = renderCard(c, printWidth, false)
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func printPlain(w io.Writer, contacts []contact.Contact) error {
	for _, c := range contacts {
		mark := ""
		if c.Favorite {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Phone, mark); err != nil {
			return fmt.Errorf("print: %w", err)
		}
	}
	return nil
}
