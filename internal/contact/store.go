package contact

import (
	"slices"

	"github.com/google/uuid"
)

// Store is the single source of truth for the contact list and view flags.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Store struct {
	contacts      []Contact
	favoritesOnly bool
	showAddForm   bool
	newID         func() uuid.UUID
	seeds         []Seed
	subs          []*subscriber
}

type subscriber struct {
	fn      func(Event)
	removed bool
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how contact IDs are minted.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithContacts seeds the store. Seeds with a blank name or phone are skipped.
// Seeding does not publish events.
func WithContacts(seeds []Seed) Option {
	return func(s *Store) {
		s.seeds = append(s.seeds, seeds...)
	}
}

// WithFavoritesOnly sets the initial view mode.
func WithFavoritesOnly(on bool) Option {
	return func(s *Store) {
		s.favoritesOnly = on
	}
}

// NewStore returns an empty Store showing all contacts with the form hidden.
func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	for _, seed := range s.seeds {
		if _, ok := s.add(seed.Name, seed.Phone); ok && seed.Favorite {
			s.contacts[len(s.contacts)-1].Favorite = true
		}
	}
	s.seeds = nil
	return s
}

// Add appends a contact with Favorite unset. It reports false, without
// mutating anything, when name or phone is blank.
func (s *Store) Add(name, phone string) (Contact, bool) {
	c, ok := s.add(name, phone)
	if !ok {
		return Contact{}, false
	}
	s.publish(Event{Kind: EventAdded, Contact: c})
	return c, true
}

func (s *Store) add(name, phone string) (Contact, bool) {
	if IsBlank(name) || IsBlank(phone) {
		return Contact{}, false
	}
	c := Contact{ID: s.newID(), Name: name, Phone: phone}
	s.contacts = append(s.contacts, c)
	return c, true
}

// ToggleFavorite flips the Favorite flag of the contact with the given ID,
// keeping its position. Unknown IDs are ignored.
func (s *Store) ToggleFavorite(id uuid.UUID) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	c := s.contacts[i]
	c.Favorite = !c.Favorite
	s.contacts[i] = c
	s.publish(Event{Kind: EventFavoriteToggled, Contact: c})
	return c, true
}

// SetViewMode selects between all contacts and favorites only.
func (s *Store) SetViewMode(favoritesOnly bool) {
	if s.favoritesOnly == favoritesOnly {
		return
	}
	s.favoritesOnly = favoritesOnly
	s.publish(Event{Kind: EventViewModeChanged})
}

// SetShowAddForm shows or hides the add-contact form.
func (s *Store) SetShowAddForm(visible bool) {
	if s.showAddForm == visible {
		return
	}
	s.showAddForm = visible
	s.publish(Event{Kind: EventAddFormChanged})
}

// ToggleShowAddForm flips form visibility.
func (s *Store) ToggleShowAddForm() {
	s.SetShowAddForm(!s.showAddForm)
}

// ShowFavoritesOnly reports the current view mode.
func (s *Store) ShowFavoritesOnly() bool { return s.favoritesOnly }

// ShowAddForm reports whether the add-contact form is visible.
func (s *Store) ShowAddForm() bool { return s.showAddForm }

// Visible returns the contacts to render for the current view mode,
// in insertion order. The returned slice is a copy.
func (s *Store) Visible() []Contact {
	if !s.favoritesOnly {
		return s.All()
	}
	out := make([]Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.Favorite {
			out = append(out, c)
		}
	}
	return out
}

// All returns every contact in insertion order. The returned slice is a copy.
func (s *Store) All() []Contact {
	return append([]Contact(nil), s.contacts...)
}

// Len returns the total number of contacts.
func (s *Store) Len() int { return len(s.contacts) }

// Get looks up a contact by ID.
func (s *Store) Get(id uuid.UUID) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// Subscribe registers fn to be called synchronously after every successful
// mutation. The returned func removes the subscription and may be called
// from inside a subscriber.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		sub.removed = true
		s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(other *subscriber) bool {
			return other == sub
		})
	}
}

// publish delivers ev to a snapshot of the subscribers, skipping any removed
// by an earlier callback in the same delivery.
func (s *Store) publish(ev Event) {
	for _, sub := range slices.Clone(s.subs) {
		if sub.removed {
			continue
		}
		sub.fn(ev)
	}
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
