package sqlstore

import "github.com/kpatel/grouplift/internal/models"

func (s *SQLStore) CreateGroup(name, inviteCode string) (int64, error) {
	var id int64
	query := s.rebind("INSERT INTO groups (name, invite_code) VALUES (?, ?) RETURNING id")
	err := s.db.QueryRow(query, name, inviteCode).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStore) GetGroup(id int) (*models.Group, error) {
	var group models.Group
	query := s.rebind("SELECT id, name, invite_code FROM groups WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&group.ID, &group.Name, &group.InviteCode)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *SQLStore) GetGroupByInviteCode(code string) (*models.Group, error) {
	var group models.Group
	query := s.rebind("SELECT id, name, invite_code FROM groups WHERE invite_code = ?")
	err := s.db.QueryRow(query, code).Scan(&group.ID, &group.Name, &group.InviteCode)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *SQLStore) InviteCodeTaken(code string) (bool, error) {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM groups WHERE invite_code = ?)")
	err := s.db.QueryRow(query, code).Scan(&exists)
	return exists, err
}

func (s *SQLStore) AddMember(groupID, userID int) error {
	query := s.rebind("INSERT INTO memberships (group_id, user_id) VALUES (?, ?)")
	_, err := s.db.Exec(query, groupID, userID)
	return err
}

func (s *SQLStore) RemoveMember(groupID, userID int) error {
	query := s.rebind("DELETE FROM memberships WHERE group_id = ? AND user_id = ?")
	_, err := s.db.Exec(query, groupID, userID)
	return err
}

func (s *SQLStore) IsMember(groupID, userID int) (bool, error) {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM memberships WHERE group_id = ? AND user_id = ?)")
	err := s.db.QueryRow(query, groupID, userID).Scan(&exists)
	return exists, err
}

func (s *SQLStore) GetUserGroups(userID int) ([]models.Group, error) {
	query := s.rebind(`
		SELECT g.id, g.name, g.invite_code
		FROM groups g
		JOIN memberships m ON g.id = m.group_id
		WHERE m.user_id = ?
	`)
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.InviteCode); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (s *SQLStore) GetGroupMembers(groupID int) ([]models.User, error) {
	query := s.rebind(`
		SELECT u.id, u.email, u.name
		FROM users u
		JOIN memberships m ON u.id = m.user_id
		WHERE m.group_id = ?
	`)
	rows, err := s.db.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLStore) CountMembers(groupID int) (int, error) {
	var count int
	query := s.rebind("SELECT COUNT(*) FROM memberships WHERE group_id = ?")
	err := s.db.QueryRow(query, groupID).Scan(&count)
	return count, err
}

func (s *SQLStore) DeleteGroup(groupID int) error {
	query := s.rebind("DELETE FROM memberships WHERE group_id = ?")
	if _, err := s.db.Exec(query, groupID); err != nil {
		return err
	}

	query = s.rebind("DELETE FROM groups WHERE id = ?")
	_, err := s.db.Exec(query, groupID)
	return err
}
