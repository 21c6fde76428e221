package models

import (
	"sort"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey buckets a timestamp by its local calendar date.
func DateKey(t time.Time) string {
	return t.Local().Format(dateKeyLayout)
}

// GroupEventsByDate partitions events by the local calendar date of their
// start time. Order within a group is insertion order.
func GroupEventsByDate(events []Event) map[string][]Event {
	groups := make(map[string][]Event)
	for _, e := range events {
		key := DateKey(e.StartTime)
		groups[key] = append(groups[key], e)
	}
	return groups
}

// SortedDateKeys returns the group keys in lexicographic order, which for
// YYYY-MM-DD keys is chronological order.
func SortedDateKeys(groups map[string][]Event) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortByStart returns a copy sorted ascending by start time.
func SortByStart(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// CurrentEvents keeps events whose interval contains now (inclusive ends).
func CurrentEvents(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if !e.StartTime.After(now) && !e.EndTime.Before(now) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents keeps events starting after now on the same local calendar
// day. An event is never both current and upcoming.
func UpcomingEvents(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if e.StartTime.After(now) && DateKey(e.StartTime) == DateKey(now) {
			out = append(out, e)
		}
	}
	return out
}
