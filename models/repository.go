package models

import "time"

// Role is the capability a user advertises at login. It is trusted as-is:
// the repositories never check it, policy checks live at the handler layer.
type Role string

const (
	RoleSpectator Role = "spectator"
	RolePerformer Role = "performer"
	RoleOrganizer Role = "organizer"
)

// Audience selects which roles an announcement is shown to.
type Audience string

const (
	AudienceAll        Audience = "all"
	AudiencePerformers Audience = "performers"
	AudienceSpectators Audience = "spectators"
	AudienceOrganizers Audience = "organizers"
)

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	BandID     string `json:"bandId,omitempty"`
	Instrument string `json:"instrument,omitempty"`
	Section    string `json:"section,omitempty"`
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	BandID      string    `json:"bandId"`
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Audience  Audience  `json:"audience"`
}

// PerformerLocation is keyed by PerformerID; at most one record per performer.
type PerformerLocation struct {
	PerformerID string    `json:"performerId"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Section     string    `json:"section"`
	Instrument  string    `json:"instrument"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Venue struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	MapImageURL string       `json:"mapImageUrl"`
	Points      []VenuePoint `json:"points"`
}

type VenuePoint struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // entrance, exit, restroom, food, seating, stage, parking, info
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
}

// ===== Events =====
type EventRepository interface {
	GetAll() []Event
	GetByID(id string) (Event, bool)
	Create(e *Event)
	Update(e *Event) bool
	Delete(id string) bool
}

// ===== Announcements =====
// GetAll returns newest first; Create prepends and stamps id + timestamp.
type AnnouncementRepository interface {
	GetAll() []Announcement
	GetByID(id string) (Announcement, bool)
	Create(a *Announcement)
	Update(a *Announcement) bool
	Delete(id string) bool
}

// ===== Performer locations =====
// Upsert replaces in place by PerformerID (keeping its position) or appends,
// stamping LastUpdated either way.
type LocationRepository interface {
	GetAll() []PerformerLocation
	GetByPerformer(performerID string) (PerformerLocation, bool)
	Upsert(l *PerformerLocation)
}

// ===== Venues =====
// Venues are read-only seed data; only the "current" selection moves.
// SetCurrent with an unknown id clears the selection and reports the miss.
type VenueRepository interface {
	GetAll() []Venue
	GetByID(id string) (Venue, bool)
	Current() (Venue, bool)
	SetCurrent(id string) bool
}
