package ws

import (
	"encoding/json"
	"strings"
	"time"
)

type StaffingUpdatedEvent struct {
	Type      string `json:"type"`
	Resource  string `json:"resource"`
	Timestamp string `json:"timestamp"`
}

// Notifier broadcasts staffing-data changes to every connected client.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyStaffingUpdated(resource string) {
	if n == nil || n.hub == nil {
		return
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		resource = "staffing"
	}

	evt := StaffingUpdatedEvent{
		Type:      "staffing_updated",
		Resource:  resource,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
