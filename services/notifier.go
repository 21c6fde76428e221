package services

import (
	"log"

	pubnub "github.com/pubnub/go"

	"coordinator/models"
)

// Notifier is the user-facing notification surface: per-user success toasts
// plus broadcasts when an announcement is posted or a performer moves.
// Without a PubNub client it degrades to a no-op, so the store's contract
// (mutate, then notify) holds in every environment including tests.
type Notifier struct {
	pn *pubnub.PubNub
}

func NewNotifier(pn *pubnub.PubNub) *Notifier {
	return &Notifier{pn: pn}
}

// Success delivers an operation toast to one user's channel.
func (n *Notifier) Success(userID, message string) {
	n.publish("user-"+userID, map[string]any{
		"type":    "toast",
		"level":   "success",
		"message": message,
	})
}

// Error delivers a transient failure toast (rejected input and the like).
func (n *Notifier) Error(userID, message string) {
	n.publish("user-"+userID, map[string]any{
		"type":    "toast",
		"level":   "error",
		"message": message,
	})
}

// Announce broadcasts a new announcement to its audience channel.
func (n *Notifier) Announce(a models.Announcement) {
	n.publish("announcements-"+string(a.Audience), map[string]any{
		"type":     "announcement",
		"id":       a.ID,
		"title":    a.Title,
		"message":  a.Message,
		"audience": string(a.Audience),
	})
}

// LocationUpdated broadcasts a performer's new position to the map feed.
func (n *Notifier) LocationUpdated(l models.PerformerLocation) {
	n.publish("locations", map[string]any{
		"type":        "location",
		"performerId": l.PerformerID,
		"name":        l.Name,
		"latitude":    l.Latitude,
		"longitude":   l.Longitude,
		"section":     l.Section,
		"instrument":  l.Instrument,
	})
}

func (n *Notifier) publish(channel string, message map[string]any) {
	if n == nil || n.pn == nil {
		return
	}
	_, status, err := n.pn.Publish().
		Channel(channel).
		Message(message).
		Execute()
	if err != nil {
		log.Printf("notify %s: %v", channel, err)
		return
	}
	if status.Error != nil {
		log.Printf("notify %s: status %d: %v", channel, status.StatusCode, status.Error)
	}
}
