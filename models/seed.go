package models

import "time"

// Built-in dataset the service boots with. Each function returns a fresh
// slice so repositories never share backing arrays.

func SeedEvents() []Event {
	day := func(h, m int) time.Time {
		return time.Date(2023, time.October, 1, h, m, 0, 0, time.Local)
	}
	return []Event{
		{
			ID:          "1",
			Name:        "Opening Ceremony",
			StartTime:   day(9, 0),
			EndTime:     day(10, 0),
			Location:    "Main Stage",
			Description: "Welcome to the annual marching band competition!",
			BandID:      "all",
		},
		{
			ID:          "2",
			Name:        "Northside High School Performance",
			StartTime:   day(10, 30),
			EndTime:     day(11, 0),
			Location:    "Field A",
			Description: `Northside High School Marching Band performs their new routine "Celestial Journey"`,
			BandID:      "band1",
		},
		{
			ID:          "3",
			Name:        "Westlake Academy Performance",
			StartTime:   day(11, 30),
			EndTime:     day(12, 0),
			Location:    "Field A",
			Description: `Westlake Academy Marching Band performs "Echoes of History"`,
			BandID:      "band2",
		},
		{
			ID:          "4",
			Name:        "Lunch Break",
			StartTime:   day(12, 0),
			EndTime:     day(13, 0),
			Location:    "Food Court",
			Description: "Break for lunch. Food available at the food court.",
			BandID:      "all",
		},
		{
			ID:          "5",
			Name:        "Eastridge High School Performance",
			StartTime:   day(13, 30),
			EndTime:     day(14, 0),
			Location:    "Field A",
			Description: `Eastridge High School Marching Band performs "Rhythms of the World"`,
			BandID:      "band3",
		},
		{
			ID:          "6",
			Name:        "Awards Ceremony",
			StartTime:   day(16, 0),
			EndTime:     day(17, 0),
			Location:    "Main Stage",
			Description: "Presentation of awards to the best performing bands.",
			BandID:      "all",
		},
	}
}

func SeedAnnouncements() []Announcement {
	now := time.Now()
	return []Announcement{
		{
			ID:        "1",
			Title:     "Welcome!",
			Message:   "Welcome to the annual marching band competition! We're excited to have you here.",
			Timestamp: now,
			Audience:  AudienceAll,
		},
		{
			ID:        "2",
			Title:     "Schedule Update",
			Message:   "Due to light rain, performances will start 15 minutes later than scheduled.",
			Timestamp: now.Add(-30 * time.Minute),
			Audience:  AudienceAll,
		},
		{
			ID:        "3",
			Title:     "Performers Preparation",
			Message:   "All performers from Northside High School, please gather at the warm-up area in 10 minutes.",
			Timestamp: now.Add(-45 * time.Minute),
			Audience:  AudiencePerformers,
		},
	}
}

func SeedLocations() []PerformerLocation {
	now := time.Now()
	return []PerformerLocation{
		{
			PerformerID: "p1",
			Name:        "Jane Smith",
			Latitude:    37.7858,
			Longitude:   -122.4064,
			Section:     "Brass",
			Instrument:  "Trumpet",
			LastUpdated: now,
		},
		{
			PerformerID: "p2",
			Name:        "John Doe",
			Latitude:    37.7868,
			Longitude:   -122.4074,
			Section:     "Percussion",
			Instrument:  "Snare Drum",
			LastUpdated: now,
		},
	}
}

func SeedVenues() []Venue {
	return []Venue{
		{
			ID:          "v1",
			Name:        "Memorial Stadium",
			MapImageURL: "/stadium-map.png",
			Points: []VenuePoint{
				{ID: "p1", Name: "Main Entrance", Type: "entrance", Latitude: 37.7848, Longitude: -122.4054, Description: "Main entrance to the stadium"},
				{ID: "p2", Name: "Restrooms", Type: "restroom", Latitude: 37.7858, Longitude: -122.4064, Description: "Public restrooms"},
				{ID: "p3", Name: "Food Court", Type: "food", Latitude: 37.7868, Longitude: -122.4074, Description: "Various food vendors"},
				{ID: "p4", Name: "Main Stage", Type: "stage", Latitude: 37.7878, Longitude: -122.4084, Description: "Main performance area"},
				{ID: "p5", Name: "Parking Lot A", Type: "parking", Latitude: 37.7838, Longitude: -122.4044, Description: "Main parking area"},
			},
		},
	}
}
