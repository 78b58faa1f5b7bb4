package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/kpatel/grouplift/internal/middleware"
	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store"
)

type WorkoutHandler struct {
	Store store.Store
}

type CreateWorkoutRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Date  string `json:"date"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

func (h *WorkoutHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD.", http.StatusBadRequest)
		return
	}

	workout := &models.Workout{
		UserID: middleware.UserID(r),
		Title:  req.Title,
		Date:   date,
	}

	id, err := h.Store.CreateWorkout(workout)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	workout.ID = int(id)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(workout)
}

// WorkoutsByDate lists workouts logged by the caller's groupmates on a day,
// falling back to the caller's own workouts when the group view is empty.
func (h *WorkoutHandler) WorkoutsByDate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD.", http.StatusBadRequest)
		return
	}

	ids, err := h.Store.GroupmateIDs(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	workouts, err := h.Store.GetWorkoutsByDate(ids, date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(workouts) == 0 {
		workouts, err = h.Store.GetWorkoutsByDate([]int{userID}, date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if len(workouts) == 0 {
		http.Error(w, "No workouts found for the given date.", http.StatusNotFound)
		return
	}

	out := lo.Map(workouts, func(workout models.Workout, _ int) models.Workout {
		workout.IsLiked, _ = h.Store.HasLiked(workout.ID, userID)
		return workout
	})

	json.NewEncoder(w).Encode(out)
}

func (h *WorkoutHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	workoutID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Store.GetWorkout(workoutID); err != nil {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}

	fires, err := h.Store.ToggleLike(workoutID, middleware.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]int{"fires": fires})
}

func (h *WorkoutHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	workoutID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Store.GetWorkout(workoutID); err != nil {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}

	comments, err := h.Store.GetWorkoutComments(workoutID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	json.NewEncoder(w).Encode(comments)
}

func (h *WorkoutHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	workoutID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Store.GetWorkout(workoutID); err != nil {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		WorkoutID: workoutID,
		AuthorID:  middleware.UserID(r),
		Text:      req.Text,
	}

	id, err := h.Store.CreateComment(comment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	created, err := h.Store.GetComment(int(id))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *WorkoutHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, _ := strconv.Atoi(mux.Vars(r)["comment_id"])

	comment, err := h.Store.GetComment(commentID)
	if err != nil {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}

	if comment.AuthorID != middleware.UserID(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.Store.DeleteComment(commentID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
