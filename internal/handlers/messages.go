package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kpatel/grouplift/internal/middleware"
	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store"
)

type MessageHandler struct {
	Store store.Store
}

// GroupMessages lists a group's chat history in chronological order, gated on
// membership. Supports optional limit/offset query parameters.
func (h *MessageHandler) GroupMessages(w http.ResponseWriter, r *http.Request) {
	groupID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Store.GetGroup(groupID); err != nil {
		http.Error(w, "Group not found", http.StatusNotFound)
		return
	}

	isMember, err := h.Store.IsMember(groupID, middleware.UserID(r))
	if err != nil || !isMember {
		http.Error(w, "You are not a member of this group", http.StatusForbidden)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	messages, err := h.Store.GetGroupMessages(groupID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	json.NewEncoder(w).Encode(messages)
}
