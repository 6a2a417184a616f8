package sqlstore

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/dkhalil/blurt/internal/models"
)

func (s *SQLStore) CreateAccount(username, password string) (*models.Account, error) {
	account := models.Account{Username: username, Password: password}
	query := s.rebind("INSERT INTO account (username, password) VALUES (?, ?) RETURNING account_id")
	if err := s.db.QueryRow(query, username, password).Scan(&account.ID); err != nil {
		slog.Error("insert account", "username", username, "error", err)
		return nil, err
	}
	return &account, nil
}

func (s *SQLStore) GetAccountByUsername(username string) (*models.Account, error) {
	query := s.rebind("SELECT account_id, username, password FROM account WHERE username = ?")
	return s.scanAccount(s.db.QueryRow(query, username))
}

func (s *SQLStore) GetAccountByCredentials(username, password string) (*models.Account, error) {
	query := s.rebind("SELECT account_id, username, password FROM account WHERE username = ? AND password = ?")
	return s.scanAccount(s.db.QueryRow(query, username, password))
}

func (s *SQLStore) GetAccountByID(id int) (*models.Account, error) {
	query := s.rebind("SELECT account_id, username, password FROM account WHERE account_id = ?")
	return s.scanAccount(s.db.QueryRow(query, id))
}

func (s *SQLStore) scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Username, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("query account", "error", err)
		return nil, err
	}
	return &a, nil
}
