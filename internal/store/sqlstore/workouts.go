package sqlstore

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kpatel/grouplift/internal/models"
)

func (s *SQLStore) CreateWorkout(w *models.Workout) (int64, error) {
	var id int64
	query := s.rebind("INSERT INTO workouts (user_id, title, date) VALUES (?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, w.UserID, w.Title, w.Date).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStore) GetWorkout(id int) (*models.Workout, error) {
	var w models.Workout
	query := s.rebind(`
		SELECT w.id, w.user_id, w.title, w.date,
			(SELECT COUNT(*) FROM likes l WHERE l.workout_id = w.id)
		FROM workouts w
		WHERE w.id = ?
	`)
	err := s.db.QueryRow(query, id).Scan(&w.ID, &w.UserID, &w.Title, &w.Date, &w.Fires)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *SQLStore) GetWorkoutsByDate(userIDs []int, date string) ([]models.Workout, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Join(lo.RepeatBy(len(userIDs), func(int) string { return "?" }), ", ")
	query := s.rebind(`
		SELECT w.id, w.user_id, w.title, w.date,
			(SELECT COUNT(*) FROM likes l WHERE l.workout_id = w.id)
		FROM workouts w
		WHERE w.user_id IN (` + placeholders + `) AND w.date = ?
		ORDER BY w.id DESC
	`)

	args := make([]interface{}, 0, len(userIDs)+1)
	for _, id := range userIDs {
		args = append(args, id)
	}
	args = append(args, date)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.Date, &w.Fires); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// GroupmateIDs returns the ids of every user sharing at least one group with the
// given user, including the user themselves when they belong to a group.
func (s *SQLStore) GroupmateIDs(userID int) ([]int, error) {
	query := s.rebind(`
		SELECT DISTINCT m2.user_id
		FROM memberships m1
		JOIN memberships m2 ON m1.group_id = m2.group_id
		WHERE m1.user_id = ?
	`)
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ToggleLike adds the user's like if absent, removes it otherwise, and returns
// the resulting like count.
func (s *SQLStore) ToggleLike(workoutID, userID int) (int, error) {
	liked, err := s.HasLiked(workoutID, userID)
	if err != nil {
		return 0, err
	}

	if liked {
		query := s.rebind("DELETE FROM likes WHERE workout_id = ? AND user_id = ?")
		if _, err := s.db.Exec(query, workoutID, userID); err != nil {
			return 0, err
		}
	} else {
		query := s.rebind("INSERT INTO likes (workout_id, user_id) VALUES (?, ?)")
		if _, err := s.db.Exec(query, workoutID, userID); err != nil {
			return 0, err
		}
	}

	var count int
	query := s.rebind("SELECT COUNT(*) FROM likes WHERE workout_id = ?")
	err = s.db.QueryRow(query, workoutID).Scan(&count)
	return count, err
}

func (s *SQLStore) HasLiked(workoutID, userID int) (bool, error) {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM likes WHERE workout_id = ? AND user_id = ?)")
	err := s.db.QueryRow(query, workoutID, userID).Scan(&exists)
	return exists, err
}

func (s *SQLStore) CreateComment(c *models.Comment) (int64, error) {
	var id int64
	query := s.rebind("INSERT INTO comments (workout_id, author_id, text) VALUES (?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, c.WorkoutID, c.AuthorID, c.Text).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStore) GetComment(id int) (*models.Comment, error) {
	var c models.Comment
	query := s.rebind(`
		SELECT c.id, c.workout_id, c.author_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.id = ?
	`)
	err := s.db.QueryRow(query, id).Scan(&c.ID, &c.WorkoutID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) GetWorkoutComments(workoutID int) ([]models.Comment, error) {
	query := s.rebind(`
		SELECT c.id, c.workout_id, c.author_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.workout_id = ?
		ORDER BY c.created_at ASC, c.id ASC
	`)
	rows, err := s.db.Query(query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.WorkoutID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *SQLStore) DeleteComment(id int) error {
	query := s.rebind("DELETE FROM comments WHERE id = ?")
	_, err := s.db.Exec(query, id)
	return err
}
