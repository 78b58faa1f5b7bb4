package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

type Group struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"invite_code"`
	Members    []User `json:"members,omitempty"`
}

type Workout struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Title   string `json:"title"`
	Date    string `json:"date"` // YYYY-MM-DD
	Fires   int    `json:"fires"`
	IsLiked bool   `json:"isLiked"`
}

type Comment struct {
	ID         int       `json:"id"`
	WorkoutID  int       `json:"workout_id"`
	AuthorID   int       `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type Message struct {
	ID         int       `json:"id"`
	GroupID    int       `json:"group_id"`
	SenderID   int       `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
