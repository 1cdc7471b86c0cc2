package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// Empty-state messages for the two view modes.
const (
	EmptyAll       = "Sin contactos"
	EmptyFavorites = "Sin favoritos"
)

func emptyText(favoritesOnly bool) string {
	if favoritesOnly {
		return EmptyFavorites
	}
	return EmptyAll
}

// renderCard renders one contact as a bordered card of the given outer width
// with name and phone on the left and the favorite switch on the right.
func renderCard(c contact.Contact, width int, selected bool) string {
	style := UnfocusedCard()
	if selected {
		style = FocusedCard()
	}
	// Border (2) and padding (2) are outside the content width.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	sw := switchOff
	if c.Favorite {
		sw = switchOn
	}
	swWidth := lipgloss.Width(sw)

	textWidth := inner - swWidth - 1
	if textWidth < 1 {
		textWidth = 1
	}
	text := lipgloss.NewStyle().Width(textWidth).MaxHeight(2).Render(
		nameStyle.Render(truncate(c.Name, textWidth)) + "\n" + mutedText.Render(truncate(c.Phone, textWidth)),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Center, text, " ", sw)

	return style.Width(inner + 2).Render(row)
}

// renderCards renders the contacts that fit in height lines, scrolled so the
// cursor stays visible.
func renderCards(contacts []contact.Contact, cursor, width, height int, selectable bool) string {
	capacity := height / cardHeight
	if capacity < 1 {
		capacity = 1
	}
	start, end := window(len(contacts), cursor, capacity)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(contacts[i], width, selectable && i == cursor))
	}
	return lipgloss.NewStyle().MarginLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

// window returns the [start, end) slice bounds of n items showing at most
// capacity items with cursor inside the range.
func window(n, cursor, capacity int) (start, end int) {
	if n <= capacity {
		return 0, n
	}
	start = cursor - capacity + 1
	if start < 0 {
		start = 0
	}
	end = start + capacity
	if end > n {
		end = n
		start = end - capacity
	}
	return start, end
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
