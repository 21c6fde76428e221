package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coordinator/models"
)

func performer() models.User {
	return models.User{
		ID:         "perf-1",
		Name:       "Jane Smith",
		Role:       models.RolePerformer,
		Section:    "Brass",
		Instrument: "Trumpet",
	}
}

func TestTracking_BroadcastsJitteredPositions(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), 10*time.Millisecond, time.Minute)
	t.Cleanup(svc.StopAll)

	svc.Start(performer())
	require.True(t, svc.IsTracking("perf-1"))

	require.Eventually(t, func() bool {
		_, ok := repo.GetByPerformer("perf-1")
		return ok
	}, time.Second, 5*time.Millisecond)

	loc, _ := repo.GetByPerformer("perf-1")
	assert.InDelta(t, trackingBaseLat, loc.Latitude, trackingSpread)
	assert.InDelta(t, trackingBaseLng, loc.Longitude, trackingSpread)
	assert.Equal(t, "Brass", loc.Section)
	assert.Equal(t, "Trumpet", loc.Instrument)
	assert.Len(t, repo.GetAll(), 1, "repeated ticks upsert, never append")
}

func TestTracking_StopEndsSessionImmediately(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), 10*time.Millisecond, time.Minute)
	t.Cleanup(svc.StopAll)

	svc.Start(performer())
	require.True(t, svc.Stop("perf-1"))
	assert.False(t, svc.IsTracking("perf-1"), "stop must take effect before it returns")

	assert.False(t, svc.Stop("perf-1"), "second stop is a no-op")
}

func TestTracking_RepeatedToggleNeverReportsStale(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), time.Millisecond, time.Minute)
	t.Cleanup(svc.StopAll)

	for i := 0; i < 100; i++ {
		svc.Start(performer())
		require.True(t, svc.IsTracking("perf-1"), "round %d", i)
		require.True(t, svc.Stop("perf-1"), "round %d", i)
		require.False(t, svc.IsTracking("perf-1"), "round %d", i)
	}
}

func TestTracking_SessionTimesOutOnItsOwn(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), 5*time.Millisecond, 30*time.Millisecond)
	t.Cleanup(svc.StopAll)

	svc.Start(performer())

	require.Eventually(t, func() bool {
		return !svc.IsTracking("perf-1")
	}, time.Second, 5*time.Millisecond, "outer timeout must end the session without an explicit stop")
}

func TestTracking_RestartReplacesSession(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), 10*time.Millisecond, time.Minute)
	t.Cleanup(svc.StopAll)

	svc.Start(performer())
	svc.Start(performer())
	require.True(t, svc.IsTracking("perf-1"))

	require.True(t, svc.Stop("perf-1"))
	require.Eventually(t, func() bool {
		return !svc.IsTracking("perf-1")
	}, time.Second, 5*time.Millisecond)
}

func TestTracking_UnknownFieldsDefaulted(t *testing.T) {
	repo := models.NewMemoryLocationRepository(nil)
	svc := NewTrackingService(repo, NewNotifier(nil), 5*time.Millisecond, time.Minute)
	t.Cleanup(svc.StopAll)

	svc.Start(models.User{ID: "perf-2", Name: "Sam", Role: models.RolePerformer})

	require.Eventually(t, func() bool {
		_, ok := repo.GetByPerformer("perf-2")
		return ok
	}, time.Second, 5*time.Millisecond)

	loc, _ := repo.GetByPerformer("perf-2")
	assert.Equal(t, "Unknown", loc.Section)
	assert.Equal(t, "Unknown", loc.Instrument)
}
