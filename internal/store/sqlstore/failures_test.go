package sqlstore

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// Storage failures must come back as errors, distinct from the (nil, nil)
// absent result.

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &SQLStore{db: db, driverName: "sqlite3"}, mock
}

func TestCreateAccountStorageFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("INSERT INTO account").WillReturnError(errors.New("disk full"))

	account, err := s.CreateAccount("alice", "password123")
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if account != nil {
		t.Errorf("Expected nil account, got %+v", account)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetAccountByUsernameStorageFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT .* FROM account").WillReturnError(errors.New("connection reset"))

	account, err := s.GetAccountByUsername("alice")
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if account != nil {
		t.Errorf("Expected nil account, got %+v", account)
	}
}

func TestGetAllMessagesStorageFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT .* FROM message").WillReturnError(errors.New("connection reset"))

	messages, err := s.GetAllMessages()
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if messages != nil {
		t.Errorf("Expected nil slice on failure, got %+v", messages)
	}
}

func TestDeleteMessageStorageFailure(t *testing.T) {
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"message_id", "posted_by", "message_text", "time_posted_epoch"}).
		AddRow(int64(1), int64(1), "hello", int64(1700000000000))
	mock.ExpectQuery("SELECT .* FROM message").WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM message").WillReturnError(errors.New("locked"))

	message, err := s.DeleteMessage(1)
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if message != nil {
		t.Errorf("Expected nil message, got %+v", message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
