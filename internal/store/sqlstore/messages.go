package sqlstore

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/dkhalil/blurt/internal/models"
)

func (s *SQLStore) CreateMessage(postedBy int, text string, timePostedEpoch int64) (*models.Message, error) {
	message := models.Message{PostedBy: postedBy, Text: text, TimePostedEpoch: timePostedEpoch}
	query := s.rebind("INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?) RETURNING message_id")
	if err := s.db.QueryRow(query, postedBy, text, timePostedEpoch).Scan(&message.ID); err != nil {
		slog.Error("insert message", "posted_by", postedBy, "error", err)
		return nil, err
	}
	return &message, nil
}

func (s *SQLStore) GetAllMessages() ([]models.Message, error) {
	query := "SELECT message_id, posted_by, message_text, time_posted_epoch FROM message"
	return s.queryMessages(query)
}

func (s *SQLStore) GetMessageByID(id int) (*models.Message, error) {
	query := s.rebind("SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE message_id = ?")
	var m models.Message
	err := s.db.QueryRow(query, id).Scan(&m.ID, &m.PostedBy, &m.Text, &m.TimePostedEpoch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("query message", "message_id", id, "error", err)
		return nil, err
	}
	return &m, nil
}

// DeleteMessage removes the row and returns its pre-deletion value. A missing
// id is not an error: the result is (nil, nil) and nothing is touched.
func (s *SQLStore) DeleteMessage(id int) (*models.Message, error) {
	m, err := s.GetMessageByID(id)
	if err != nil || m == nil {
		return nil, err
	}

	query := s.rebind("DELETE FROM message WHERE message_id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		slog.Error("delete message", "message_id", id, "error", err)
		return nil, err
	}
	return m, nil
}

// UpdateMessageText rewrites the text column and returns the updated row, or
// (nil, nil) if no row matched the id.
func (s *SQLStore) UpdateMessageText(id int, text string) (*models.Message, error) {
	query := s.rebind("UPDATE message SET message_text = ? WHERE message_id = ?")
	result, err := s.db.Exec(query, text, id)
	if err != nil {
		slog.Error("update message", "message_id", id, "error", err)
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return s.GetMessageByID(id)
}

func (s *SQLStore) GetMessagesByAccount(accountID int) ([]models.Message, error) {
	query := s.rebind("SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE posted_by = ?")
	return s.queryMessages(query, accountID)
}

func (s *SQLStore) queryMessages(query string, args ...any) ([]models.Message, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		slog.Error("query messages", "error", err)
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.TimePostedEpoch); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
