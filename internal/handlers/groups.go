package handlers

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kpatel/grouplift/internal/middleware"
	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store"
)

const (
	inviteCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength = 6
)

type GroupHandler struct {
	Store store.Store
}

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// generateInviteCode produces a code not yet assigned to any group, retrying
// on collision.
func generateInviteCode(st store.Store) (string, error) {
	for {
		b := make([]byte, inviteCodeLength)
		for i := range b {
			b[i] = inviteCodeChars[rand.Intn(len(inviteCodeChars))]
		}
		code := string(b)

		taken, err := st.InviteCodeTaken(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	code, err := generateInviteCode(h.Store)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	groupID, err := h.Store.CreateGroup(req.Name, code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Creator joins their own group
	if err := h.Store.AddMember(int(groupID), middleware.UserID(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":          groupID,
		"name":        req.Name,
		"invite_code": code,
	})
}

func (h *GroupHandler) MyGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Store.GetUserGroups(middleware.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}
	json.NewEncoder(w).Encode(groups)
}

func (h *GroupHandler) GroupByInviteCode(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("invite_code")
	if code == "" {
		http.Error(w, "Invitation code is required", http.StatusBadRequest)
		return
	}

	group, err := h.Store.GetGroupByInviteCode(code)
	if err != nil {
		http.Error(w, "Group not found or invalid invitation code", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(group)
}

func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, _ := strconv.Atoi(mux.Vars(r)["id"])

	group, err := h.Store.GetGroup(groupID)
	if err != nil {
		http.Error(w, "Group not found", http.StatusNotFound)
		return
	}

	isMember, err := h.Store.IsMember(groupID, middleware.UserID(r))
	if err != nil || !isMember {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	members, err := h.Store.GetGroupMembers(groupID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	group.Members = members

	json.NewEncoder(w).Encode(group)
}

func (h *GroupHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	groupID, _ := strconv.Atoi(mux.Vars(r)["id"])
	userID := middleware.UserID(r)

	if _, err := h.Store.GetGroup(groupID); err != nil {
		http.Error(w, "Group not found", http.StatusNotFound)
		return
	}

	isMember, err := h.Store.IsMember(groupID, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if isMember {
		http.Error(w, "User is already a member of this group", http.StatusConflict)
		return
	}

	if err := h.Store.AddMember(groupID, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"detail": "User added to the group"})
}

func (h *GroupHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	groupID, _ := strconv.Atoi(mux.Vars(r)["id"])
	userID := middleware.UserID(r)

	isMember, err := h.Store.IsMember(groupID, userID)
	if err != nil || !isMember {
		http.Error(w, "User is not a member of a group", http.StatusBadRequest)
		return
	}

	if err := h.Store.RemoveMember(groupID, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Drop an emptied group, unless it still has chat history to preserve.
	count, err := h.Store.CountMembers(groupID)
	if err == nil && count == 0 {
		msgs, err := h.Store.CountGroupMessages(groupID)
		if err == nil && msgs == 0 {
			if err := h.Store.DeleteGroup(groupID); err != nil {
				log.Printf("Error deleting empty group %d: %v", groupID, err)
			}
		}
	}

	json.NewEncoder(w).Encode(map[string]string{"detail": "User deleted from the group"})
}
