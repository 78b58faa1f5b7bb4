package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/kpatel/grouplift/internal/models"
)

func TestCreateWorkout(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	user := newTestUser(t, st, "alice@example.com", "Alice")

	req := authedRequest(t, "POST", "/api/workouts", map[string]string{
		"title": "Leg day",
		"date":  "2026-08-30",
	}, user.ID)
	rr := serve(handler.CreateWorkout, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var workout models.Workout
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&workout))
	require.Equal(t, "Leg day", workout.Title)
	require.Equal(t, user.ID, workout.UserID)
	require.NotZero(t, workout.ID)
}

func TestCreateWorkoutBadDate(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	user := newTestUser(t, st, "alice@example.com", "Alice")

	req := authedRequest(t, "POST", "/api/workouts", map[string]string{
		"title": "Leg day",
		"date":  "30/08/2026",
	}, user.ID)
	rr := serve(handler.CreateWorkout, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWorkoutsByDate(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	alice := newTestUser(t, st, "alice@example.com", "Alice")
	bob := newTestUser(t, st, "bob@example.com", "Bob")

	id, err := st.CreateGroup("Crew", "ABC123")
	require.NoError(t, err)
	require.NoError(t, st.AddMember(int(id), alice.ID))
	require.NoError(t, st.AddMember(int(id), bob.ID))

	_, err = st.CreateWorkout(&models.Workout{UserID: bob.ID, Title: "Swim", Date: "2026-08-30"})
	require.NoError(t, err)

	// Alice sees her groupmate's workout
	req := authedRequest(t, "GET", "/api/workouts/by-date?date=2026-08-30", nil, alice.ID)
	rr := serve(handler.WorkoutsByDate, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var workouts []models.Workout
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&workouts))
	require.Len(t, workouts, 1)
	require.Equal(t, "Swim", workouts[0].Title)
	require.False(t, workouts[0].IsLiked)

	// No workouts on another day
	req = authedRequest(t, "GET", "/api/workouts/by-date?date=2026-01-01", nil, alice.ID)
	rr = serve(handler.WorkoutsByDate, req)
	require.Equal(t, http.StatusNotFound, rr.Code)

	// Bad date format
	req = authedRequest(t, "GET", "/api/workouts/by-date?date=yesterday", nil, alice.ID)
	rr = serve(handler.WorkoutsByDate, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWorkoutsByDateFallsBackToOwn(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	alice := newTestUser(t, st, "alice@example.com", "Alice")

	// Alice belongs to no group but logged a workout
	_, err := st.CreateWorkout(&models.Workout{UserID: alice.ID, Title: "Run", Date: "2026-08-30"})
	require.NoError(t, err)

	req := authedRequest(t, "GET", "/api/workouts/by-date?date=2026-08-30", nil, alice.ID)
	rr := serve(handler.WorkoutsByDate, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var workouts []models.Workout
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&workouts))
	require.Len(t, workouts, 1)
	require.Equal(t, "Run", workouts[0].Title)
}

func TestToggleLikeEndpoint(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	alice := newTestUser(t, st, "alice@example.com", "Alice")
	bob := newTestUser(t, st, "bob@example.com", "Bob")

	id, err := st.CreateWorkout(&models.Workout{UserID: alice.ID, Title: "Run", Date: "2026-08-30"})
	require.NoError(t, err)
	workoutID := int(id)

	req := authedRequest(t, "POST", "/api/workouts/"+itoa(workoutID)+"/like", nil, bob.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID)})
	rr := serve(handler.ToggleLike, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]int
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 1, resp["fires"])

	// Toggle back off
	req = authedRequest(t, "POST", "/api/workouts/"+itoa(workoutID)+"/like", nil, bob.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID)})
	rr = serve(handler.ToggleLike, req)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 0, resp["fires"])

	// Unknown workout
	req = authedRequest(t, "POST", "/api/workouts/9999/like", nil, bob.ID)
	req = mux.SetURLVars(req, map[string]string{"id": "9999"})
	rr = serve(handler.ToggleLike, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestComments(t *testing.T) {
	st := newTestStore(t)
	handler := &WorkoutHandler{Store: st}
	alice := newTestUser(t, st, "alice@example.com", "Alice")
	bob := newTestUser(t, st, "bob@example.com", "Bob")

	id, err := st.CreateWorkout(&models.Workout{UserID: alice.ID, Title: "Run", Date: "2026-08-30"})
	require.NoError(t, err)
	workoutID := int(id)

	// Bob comments
	req := authedRequest(t, "POST", "/api/workouts/"+itoa(workoutID)+"/comments",
		map[string]string{"text": "this workout was so tiring!"}, bob.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID)})
	rr := serve(handler.CreateComment, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var comment models.Comment
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&comment))
	require.Equal(t, "Bob", comment.AuthorName)

	// List comments
	req = authedRequest(t, "GET", "/api/workouts/"+itoa(workoutID)+"/comments", nil, alice.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID)})
	rr = serve(handler.GetComments, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var comments []models.Comment
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&comments))
	require.Len(t, comments, 1)

	// Alice cannot delete Bob's comment
	req = authedRequest(t, "DELETE", "/api/workouts/"+itoa(workoutID)+"/comments/"+itoa(comment.ID), nil, alice.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID), "comment_id": itoa(comment.ID)})
	rr = serve(handler.DeleteComment, req)
	require.Equal(t, http.StatusForbidden, rr.Code)

	// Bob can
	req = authedRequest(t, "DELETE", "/api/workouts/"+itoa(workoutID)+"/comments/"+itoa(comment.ID), nil, bob.ID)
	req = mux.SetURLVars(req, map[string]string{"id": itoa(workoutID), "comment_id": itoa(comment.ID)})
	rr = serve(handler.DeleteComment, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
}
