package ws

type Hub struct {
	// Live connections keyed by group id. A user in two groups holds two
	// independent connections.
	rooms map[int]map[*Client]bool

	// Outbound events fanned out to one group's connections.
	broadcast chan Event

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[int]map[*Client]bool),
	}
}

// Run serializes all registry mutations and broadcasts on a single goroutine,
// so register/unregister/broadcast are mutually exclusive without locks.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			room := h.rooms[client.groupID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[client.groupID] = room
			}
			if !room[client] {
				room[client] = true
				activeConnections.Inc()
			}
		case client := <-h.unregister:
			h.drop(client)
		case event := <-h.broadcast:
			for client := range h.rooms[event.GroupID] {
				select {
				case client.send <- event:
					broadcastsDelivered.Inc()
				default:
					// Slow consumer: cut it loose rather than block the fan-out.
					droppedSends.Inc()
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from its room, tolerating repeat calls for the same
// client (a read-loop teardown can race a slow-consumer eviction).
func (h *Hub) drop(client *Client) {
	room, ok := h.rooms[client.groupID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.send)
	activeConnections.Dec()
	if len(room) == 0 {
		delete(h.rooms, client.groupID)
	}
}

// Broadcast delivers an event to every connection currently registered under
// the event's group, including the sender's own.
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}
