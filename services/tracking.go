package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"coordinator/models"
	"coordinator/monitoring"
)

// Coordinates the jitter is centered on; stands in for real geolocation.
const (
	trackingBaseLat = 37.785
	trackingBaseLng = -122.406
	trackingSpread  = 0.005
)

type trackingSession struct {
	cancel context.CancelFunc
}

// TrackingService runs one periodic location broadcast per performer. A
// session dies two ways: the performer toggles tracking off, or the outer
// session timeout fires. Both cancel the same context, so the ticker
// goroutine can never outlive either.
type TrackingService struct {
	locations models.LocationRepository
	notifier  *Notifier
	interval  time.Duration
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*trackingSession
}

func NewTrackingService(locations models.LocationRepository, notifier *Notifier, interval, sessionTTL time.Duration) *TrackingService {
	return &TrackingService{
		locations: locations,
		notifier:  notifier,
		interval:  interval,
		ttl:       sessionTTL,
		sessions:  make(map[string]*trackingSession),
	}
}

// Start begins broadcasting jittered positions for the user. Starting while
// a session is already live replaces it.
func (s *TrackingService) Start(user models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), s.ttl)
	session := &trackingSession{cancel: cancel}

	s.mu.Lock()
	if old, ok := s.sessions[user.ID]; ok {
		old.cancel()
	} else {
		monitoring.TrackingStarted()
	}
	s.sessions[user.ID] = session
	s.mu.Unlock()

	go s.run(ctx, user, session)
}

// Stop ends the user's session. The map entry goes synchronously, so
// IsTracking reports false as soon as Stop returns; the goroutine's own
// deferred cleanup then finds nothing to remove. Stopping an absent session
// is a no-op.
func (s *TrackingService) Stop(performerID string) bool {
	s.mu.Lock()
	session, ok := s.sessions[performerID]
	if ok {
		delete(s.sessions, performerID)
		monitoring.TrackingStopped()
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	session.cancel()
	return true
}

func (s *TrackingService) IsTracking(performerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[performerID]
	return ok
}

// StopAll cancels every live session; used at shutdown.
func (s *TrackingService) StopAll() {
	s.mu.Lock()
	sessions := make([]*trackingSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()
	for _, session := range sessions {
		session.cancel()
	}
}

func (s *TrackingService) run(ctx context.Context, user models.User, session *trackingSession) {
	defer s.remove(user.ID, session)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.report(user)
		}
	}
}

func (s *TrackingService) report(user models.User) {
	section := user.Section
	if section == "" {
		section = "Unknown"
	}
	instrument := user.Instrument
	if instrument == "" {
		instrument = "Unknown"
	}

	loc := models.PerformerLocation{
		PerformerID: user.ID,
		Name:        user.Name,
		Latitude:    trackingBaseLat + (rand.Float64()-0.5)*trackingSpread,
		Longitude:   trackingBaseLng + (rand.Float64()-0.5)*trackingSpread,
		Section:     section,
		Instrument:  instrument,
	}
	s.locations.Upsert(&loc)
	monitoring.TrackStoreOperation("locations", "upsert", "ok")
	s.notifier.LocationUpdated(loc)
}

// remove drops the session entry unless a newer session already replaced it.
func (s *TrackingService) remove(performerID string, session *trackingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.sessions[performerID]; ok && current == session {
		delete(s.sessions, performerID)
		monitoring.TrackingStopped()
	}
}
