package sqlstore

import "github.com/kpatel/grouplift/internal/models"

// SaveMessage appends a message for a group and returns it with its
// server-assigned id and timestamp.
func (s *SQLStore) SaveMessage(groupID, senderID int, content string) (*models.Message, error) {
	var id int64
	query := s.rebind("INSERT INTO messages (group_id, sender_id, content) VALUES (?, ?, ?) RETURNING id")
	if err := s.db.QueryRow(query, groupID, senderID, content).Scan(&id); err != nil {
		return nil, err
	}
	return s.getMessage(int(id))
}

func (s *SQLStore) getMessage(id int) (*models.Message, error) {
	var m models.Message
	query := s.rebind(`
		SELECT m.id, m.group_id, m.sender_id, u.name, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.id = ?
	`)
	err := s.db.QueryRow(query, id).Scan(&m.ID, &m.GroupID, &m.SenderID, &m.SenderName, &m.Content, &m.Timestamp)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetGroupMessages lists a group's messages in chronological order, ties broken
// by insertion order. limit <= 0 returns everything.
func (s *SQLStore) GetGroupMessages(groupID, limit, offset int) ([]models.Message, error) {
	query := `
		SELECT m.id, m.group_id, m.sender_id, u.name, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.group_id = ?
		ORDER BY m.created_at ASC, m.id ASC
	`
	args := []interface{}{groupID}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.SenderName, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *SQLStore) CountGroupMessages(groupID int) (int, error) {
	var count int
	query := s.rebind("SELECT COUNT(*) FROM messages WHERE group_id = ?")
	err := s.db.QueryRow(query, groupID).Scan(&count)
	return count, err
}
