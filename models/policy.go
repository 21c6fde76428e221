package models

// Advisory role policy. The repositories enforce none of this; handlers are
// expected to call these checks before invoking a mutation, which keeps the
// trust boundary explicit and testable on its own.

func CanManageEvents(r Role) bool {
	return r == RoleOrganizer
}

func CanManageAnnouncements(r Role) bool {
	return r == RoleOrganizer
}

func CanSelectVenue(r Role) bool {
	return r == RoleOrganizer
}

// CanReportLocation limits who may write a performer's position. Performers
// report only their own; organizers may correct anyone's.
func CanReportLocation(r Role, viewerID, performerID string) bool {
	if r == RoleOrganizer {
		return true
	}
	return r == RolePerformer && viewerID == performerID
}

// CanViewLocations matches the map view: spectators see the venue without
// performer positions.
func CanViewLocations(r Role) bool {
	return r == RoleOrganizer || r == RolePerformer
}
