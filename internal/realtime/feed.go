package realtime

import "github.com/Emalachi/lazersolution/internal/domain/lead"

// LeadFeed pushes lead lifecycle events onto the hub.
type LeadFeed struct {
	hub *Hub
}

func NewLeadFeed(hub *Hub) *LeadFeed {
	return &LeadFeed{hub: hub}
}

func (f *LeadFeed) LeadCreated(l *lead.Lead) {
	f.hub.Broadcast(&Event{Type: EventLeadCreated, Payload: l})
}

func (f *LeadFeed) LeadUpdated(l *lead.Lead) {
	f.hub.Broadcast(&Event{Type: EventLeadUpdated, Payload: l})
}
