package ws

import "encoding/json"

// EventKind tags outbound broadcast events so the send path can match on them
// explicitly instead of on a string convention.
type EventKind int

const (
	EventChatMessage EventKind = iota
)

// Event is a broadcast delivered through the hub to every connection
// registered under its group.
type Event struct {
	Kind       EventKind
	GroupID    int
	Content    string
	SenderID   int
	SenderName string
}

type chatMessagePayload struct {
	Content    string `json:"content"`
	SenderID   int    `json:"sender_id"`
	SenderName string `json:"sender_name"`
}

// marshal serializes the event to its wire frame. The second return is false
// for kinds that have no client-facing representation.
func (e Event) marshal() ([]byte, bool) {
	switch e.Kind {
	case EventChatMessage:
		b, err := json.Marshal(chatMessagePayload{
			Content:    e.Content,
			SenderID:   e.SenderID,
			SenderName: e.SenderName,
		})
		if err != nil {
			return nil, false
		}
		return b, true
	}
	return nil, false
}
