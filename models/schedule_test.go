package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, h, m int) time.Time {
	return time.Date(2023, time.October, day, h, m, 0, 0, time.Local)
}

func TestGroupEventsByDate_PartitionIsLossless(t *testing.T) {
	events := []Event{
		{ID: "a", StartTime: at(1, 9, 0)},
		{ID: "b", StartTime: at(2, 9, 0)},
		{ID: "c", StartTime: at(1, 15, 0)},
		{ID: "d", StartTime: at(3, 9, 0)},
	}

	groups := GroupEventsByDate(events)

	total := 0
	seen := map[string]string{}
	for key, group := range groups {
		for _, e := range group {
			total++
			prev, dup := seen[e.ID]
			require.False(t, dup, "event %s in both %s and %s", e.ID, prev, key)
			seen[e.ID] = key
			assert.Equal(t, key, DateKey(e.StartTime))
		}
	}
	assert.Equal(t, len(events), total, "no event lost or duplicated")
	assert.Equal(t, []string{"2023-10-01", "2023-10-02", "2023-10-03"}, SortedDateKeys(groups))
}

func TestGroupEventsByDate_SeedHasOneGroupInSeedOrder(t *testing.T) {
	groups := GroupEventsByDate(SeedEvents())

	require.Len(t, groups, 1)
	group, ok := groups["2023-10-01"]
	require.True(t, ok)
	require.Len(t, group, 6)

	// Seed order is already chronological, so sorting reproduces it.
	sorted := SortByStart(group)
	for i := range group {
		assert.Equal(t, group[i].ID, sorted[i].ID)
	}
}

func TestSortByStart_DoesNotMutateInput(t *testing.T) {
	events := []Event{
		{ID: "late", StartTime: at(1, 16, 0)},
		{ID: "early", StartTime: at(1, 9, 0)},
	}

	sorted := SortByStart(events)

	assert.Equal(t, "early", sorted[0].ID)
	assert.Equal(t, "late", events[0].ID, "input order untouched")
}

func TestCurrentAndUpcoming_AreDisjoint(t *testing.T) {
	now := at(1, 11, 45)
	today := SeedEvents()

	current := CurrentEvents(today, now)
	upcoming := UpcomingEvents(today, now)

	require.Len(t, current, 1)
	assert.Equal(t, "3", current[0].ID) // 11:30-12:00 contains 11:45

	upcomingIDs := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		upcomingIDs = append(upcomingIDs, e.ID)
	}
	assert.Equal(t, []string{"4", "5", "6"}, upcomingIDs)

	for _, cur := range current {
		assert.NotContains(t, upcomingIDs, cur.ID)
	}

	// Every event today is in exactly one of current, upcoming, neither.
	neither := 0
	for _, e := range today {
		in := 0
		for _, c := range current {
			if c.ID == e.ID {
				in++
			}
		}
		for _, u := range upcoming {
			if u.ID == e.ID {
				in++
			}
		}
		require.LessOrEqual(t, in, 1)
		if in == 0 {
			neither++
		}
	}
	assert.Equal(t, 2, neither) // events 1 and 2 already elapsed at 11:45
}

func TestCurrentEvents_BoundariesInclusive(t *testing.T) {
	e := Event{ID: "x", StartTime: at(1, 10, 0), EndTime: at(1, 11, 0)}

	assert.Len(t, CurrentEvents([]Event{e}, at(1, 10, 0)), 1)
	assert.Len(t, CurrentEvents([]Event{e}, at(1, 11, 0)), 1)
	assert.Empty(t, CurrentEvents([]Event{e}, at(1, 11, 1)))
	assert.Empty(t, CurrentEvents([]Event{e}, at(1, 9, 59)))
}

func TestUpcomingEvents_OtherDayExcluded(t *testing.T) {
	tomorrow := Event{ID: "t", StartTime: at(2, 9, 0), EndTime: at(2, 10, 0)}

	assert.Empty(t, UpcomingEvents([]Event{tomorrow}, at(1, 8, 0)))
}
