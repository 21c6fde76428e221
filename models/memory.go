package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory repositories backing every collection. Data lives for the
// process lifetime only; a restart resets everything to the seed dataset.
// Slices are used instead of maps where the collection has an ordering
// invariant (events keep insertion order, announcements are newest first,
// locations keep first-seen order across upserts).

type memoryEventRepo struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryEventRepository(seed []Event) EventRepository {
	return &memoryEventRepo{events: seed}
}

func (r *memoryEventRepo) GetAll() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *memoryEventRepo) GetByID(id string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (r *memoryEventRepo) Create(e *Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *e)
}

func (r *memoryEventRepo) Update(e *Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i] = *e
			return true
		}
	}
	return false
}

func (r *memoryEventRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return true
		}
	}
	return false
}

type memoryAnnouncementRepo struct {
	mu    sync.Mutex
	items []Announcement // newest first
}

func NewMemoryAnnouncementRepository(seed []Announcement) AnnouncementRepository {
	return &memoryAnnouncementRepo{items: seed}
}

func (r *memoryAnnouncementRepo) GetAll() []Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Announcement, len(r.items))
	copy(out, r.items)
	return out
}

func (r *memoryAnnouncementRepo) GetByID(id string) (Announcement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			return a, true
		}
	}
	return Announcement{}, false
}

// Create stamps id and timestamp itself; callers never supply them.
func (r *memoryAnnouncementRepo) Create(a *Announcement) {
	a.ID = uuid.NewString()
	a.Timestamp = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]Announcement{*a}, r.items...)
}

func (r *memoryAnnouncementRepo) Update(a *Announcement) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = *a
			return true
		}
	}
	return false
}

func (r *memoryAnnouncementRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

type memoryLocationRepo struct {
	mu        sync.Mutex
	locations []PerformerLocation
}

func NewMemoryLocationRepository(seed []PerformerLocation) LocationRepository {
	return &memoryLocationRepo{locations: seed}
}

func (r *memoryLocationRepo) GetAll() []PerformerLocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PerformerLocation, len(r.locations))
	copy(out, r.locations)
	return out
}

func (r *memoryLocationRepo) GetByPerformer(performerID string) (PerformerLocation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.locations {
		if l.PerformerID == performerID {
			return l, true
		}
	}
	return PerformerLocation{}, false
}

func (r *memoryLocationRepo) Upsert(l *PerformerLocation) {
	l.LastUpdated = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.locations {
		if r.locations[i].PerformerID == l.PerformerID {
			r.locations[i] = *l
			return
		}
	}
	r.locations = append(r.locations, *l)
}

type memoryVenueRepo struct {
	mu      sync.Mutex
	venues  []Venue
	current string // venue id, "" when unset
}

// NewMemoryVenueRepository selects the first seeded venue as current.
func NewMemoryVenueRepository(seed []Venue) VenueRepository {
	r := &memoryVenueRepo{venues: seed}
	if len(seed) > 0 {
		r.current = seed[0].ID
	}
	return r
}

func (r *memoryVenueRepo) GetAll() []Venue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Venue, len(r.venues))
	copy(out, r.venues)
	return out
}

func (r *memoryVenueRepo) GetByID(id string) (Venue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(id)
}

func (r *memoryVenueRepo) Current() (Venue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == "" {
		return Venue{}, false
	}
	return r.findLocked(r.current)
}

func (r *memoryVenueRepo) SetCurrent(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.findLocked(id); !ok {
		r.current = ""
		return false
	}
	r.current = id
	return true
}

func (r *memoryVenueRepo) findLocked(id string) (Venue, bool) {
	for _, v := range r.venues {
		if v.ID == id {
			return v, true
		}
	}
	return Venue{}, false
}
