package sqlstore

import (
	"github.com/kpatel/grouplift/internal/models"
	"github.com/kpatel/grouplift/internal/store"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	query := s.rebind("INSERT INTO users (email, name, password) VALUES (?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, user.Email, user.Name, user.Password).Scan(&user.ID)
	if isUniqueViolation(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

func (s *SQLStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, email, name, password FROM users WHERE email = ?")
	err := s.db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Name, &user.Password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, email, name, password FROM users WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&user.ID, &user.Email, &user.Name, &user.Password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) UpdateUser(user *models.User) error {
	query := s.rebind("UPDATE users SET name = ?, password = ? WHERE id = ?")
	_, err := s.db.Exec(query, user.Name, user.Password, user.ID)
	return err
}
