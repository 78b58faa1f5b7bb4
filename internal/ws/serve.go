package ws

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request to a websocket bound to the group named in the
// path. The caller resolves the user's identity before this point. Non-members
// get the connection closed with no payload; the registry is untouched.
func ServeWS(hub *Hub, st store.Store, w http.ResponseWriter, r *http.Request, user *models.User) {
	groupID, err := strconv.Atoi(mux.Vars(r)["group_id"])
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade error: %v", err)
		return
	}

	isMember, err := st.IsMember(groupID, user.ID)
	if err != nil || !isMember {
		conn.Close()
		return
	}

	client := &Client{
		hub:      hub,
		store:    st,
		conn:     conn,
		send:     make(chan Event, 256),
		userID:   user.ID,
		userName: user.Name,
		groupID:  groupID,
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
