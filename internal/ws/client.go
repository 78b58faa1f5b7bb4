package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kpatel/grouplift/internal/store"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size.
	maxMessageSize = 4096

	// Maximum accepted message content length, in bytes.
	maxContentLength = 1000
)

// Client is the live server-side state for one open connection, bound to one
// user and one group for its whole lifetime.
type Client struct {
	hub   *Hub
	store store.Store
	conn  *websocket.Conn
	send  chan Event

	userID   int
	userName string
	groupID  int
}

type inboundPayload struct {
	Content *string `json:"content"`
}

// readPump reads inbound frames until the connection dies. Each accepted
// message is persisted before it is broadcast, so a sender's messages are
// stored in the order they are fanned out.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close for user %d in group %d: %v", c.userID, c.groupID, err)
			}
			break
		}

		var payload inboundPayload
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Content == nil {
			// Malformed input is dropped without a reply. An empty string
			// is accepted; only a missing content key is malformed.
			continue
		}
		content := *payload.Content
		if len(content) > maxContentLength {
			continue
		}

		// Membership can be revoked mid-session; re-check on every send.
		isMember, err := c.store.IsMember(c.groupID, c.userID)
		if err != nil {
			log.Printf("Error checking membership for group %d: %v", c.groupID, err)
			continue
		}
		if !isMember {
			continue
		}

		if _, err := c.store.SaveMessage(c.groupID, c.userID, content); err != nil {
			log.Printf("Error saving message for group %d: %v", c.groupID, err)
			continue
		}
		messagesReceived.Inc()

		c.hub.Broadcast(Event{
			Kind:       EventChatMessage,
			GroupID:    c.groupID,
			Content:    content,
			SenderID:   c.userID,
			SenderName: c.userName,
		})
	}
}

// writePump is the single writer for the connection. It drains the send queue
// and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			frame, ok := event.marshal()
			if !ok {
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
