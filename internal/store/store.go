package store

import (
	"errors"

	"github.com/kpatel/grouplift/internal/models"
)

// ErrDuplicateEmail is returned by CreateUser when the email is already taken.
var ErrDuplicateEmail = errors.New("email already exists")

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	UpdateUser(user *models.User) error

	// Group operations
	CreateGroup(name, inviteCode string) (int64, error)
	GetGroup(id int) (*models.Group, error)
	GetGroupByInviteCode(code string) (*models.Group, error)
	InviteCodeTaken(code string) (bool, error)
	AddMember(groupID, userID int) error
	RemoveMember(groupID, userID int) error
	IsMember(groupID, userID int) (bool, error)
	GetUserGroups(userID int) ([]models.Group, error)
	GetGroupMembers(groupID int) ([]models.User, error)
	CountMembers(groupID int) (int, error)
	DeleteGroup(groupID int) error

	// Workout operations
	CreateWorkout(w *models.Workout) (int64, error)
	GetWorkout(id int) (*models.Workout, error)
	GetWorkoutsByDate(userIDs []int, date string) ([]models.Workout, error)
	GroupmateIDs(userID int) ([]int, error)
	ToggleLike(workoutID, userID int) (int, error)
	HasLiked(workoutID, userID int) (bool, error)
	CreateComment(c *models.Comment) (int64, error)
	GetComment(id int) (*models.Comment, error)
	GetWorkoutComments(workoutID int) ([]models.Comment, error)
	DeleteComment(id int) error

	// Message operations
	SaveMessage(groupID, senderID int, content string) (*models.Message, error)
	GetGroupMessages(groupID, limit, offset int) ([]models.Message, error)
	CountGroupMessages(groupID int) (int, error)
}
