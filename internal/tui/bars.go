package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tab captions of the bottom bar.
const (
	TabAll       = "Contactos"
	TabFavorites = "Favoritos"
)

// FabLabel is the caption of the floating action control.
const FabLabel = "+"

// Titles holds the top bar title for each view mode.
type Titles struct {
	All       string
	Favorites string
}

// DefaultTitles returns the stock top bar titles.
func DefaultTitles() Titles {
	return Titles{All: "Contactos", Favorites: "Favoritos"}
}

// Title picks the top bar title for the given view mode.
func (t Titles) Title(favoritesOnly bool) string {
	if favoritesOnly {
		return t.Favorites
	}
	return t.All
}

// topBar renders the title across the full width.
func topBar(title string, width int) string {
	return topBarStyle.Width(width).Render(title)
}

// bottomBar renders the two view-mode tabs, highlighting the active one.
func bottomBar(favoritesOnly bool, width int) string {
	all, fav := tabStyle, activeTabStyle
	if !favoritesOnly {
		all, fav = activeTabStyle, tabStyle
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		all.Render("◉ "+TabAll),
		fav.Render("♥ "+TabFavorites),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, tabs)
}

// fab renders the floating action control flush right.
func fab(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, fabStyle.Render(FabLabel)+" ")
}
