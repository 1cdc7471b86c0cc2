// Package contact holds the in-memory contact list and the two view flags
// that drive the contacts screen.
package contact

import (
	"strings"

	"github.com/google/uuid"
)

// Contact is a single entry in the contact list.
type Contact struct {
	ID       uuid.UUID
	Name     string
	Phone    string
	Favorite bool
}

// Seed is an initial contact supplied at Store construction.
type Seed struct {
	Name     string
	Phone    string
	Favorite bool
}

// EventKind identifies which Store mutation produced an Event.
type EventKind string

const (
	EventAdded           EventKind = "added"
	EventFavoriteToggled EventKind = "favorite_toggled"
	EventViewModeChanged EventKind = "view_mode_changed"
	EventAddFormChanged  EventKind = "add_form_changed"
)

// Event describes a state change. Contact is zero for flag changes.
type Event struct {
	Kind    EventKind
	Contact Contact
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
