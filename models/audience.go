package models

// AudienceVisibleTo reports whether an announcement with the given audience
// is shown to a viewer with the given role. "all" is visible to everyone,
// organizers see everything, performers and spectators only their own
// audience. Any other combination (including an unrecognized role) is hidden.
func AudienceVisibleTo(a Audience, role Role) bool {
	if a == AudienceAll {
		return true
	}
	switch role {
	case RoleOrganizer:
		return true
	case RolePerformer:
		return a == AudiencePerformers
	case RoleSpectator:
		return a == AudienceSpectators
	default:
		return false
	}
}

// VisibleAnnouncements filters the feed for a role, preserving order.
func VisibleAnnouncements(items []Announcement, role Role) []Announcement {
	out := make([]Announcement, 0, len(items))
	for _, a := range items {
		if AudienceVisibleTo(a.Audience, role) {
			out = append(out, a)
		}
	}
	return out
}
