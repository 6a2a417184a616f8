package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dkhalil/blurt/internal/models"
	"github.com/dkhalil/blurt/internal/store"
)

type AccountService struct {
	store store.AccountStore
}

func NewAccountService(s store.AccountStore) *AccountService {
	return &AccountService{store: s}
}

// Register validates and persists a new account. Checks run in order: blank
// username, short password, taken username; the first failure wins.
func (s *AccountService) Register(account models.Account) (*models.Account, error) {
	if strings.TrimSpace(account.Username) == "" {
		slog.Debug("registration rejected: blank username")
		return nil, fmt.Errorf("%w: username must not be blank", ErrInvalid)
	}
	if len(account.Password) < 4 {
		slog.Debug("registration rejected: short password", "username", account.Username)
		return nil, fmt.Errorf("%w: password must be at least 4 characters", ErrInvalid)
	}

	existing, err := s.store.GetAccountByUsername(account.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Debug("registration rejected: username taken", "username", account.Username)
		return nil, fmt.Errorf("%w: username already taken", ErrInvalid)
	}

	created, err := s.store.CreateAccount(account.Username, account.Password)
	if err != nil {
		return nil, err
	}
	slog.Info("account registered", "account_id", created.ID, "username", created.Username)
	return created, nil
}

// Login checks credentials by exact match. A miss is a rejection; the caller
// cannot tell a wrong password from an unknown username.
func (s *AccountService) Login(attempt models.Account) (*models.Account, error) {
	if strings.TrimSpace(attempt.Username) == "" || attempt.Password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrInvalid)
	}

	account, err := s.store.GetAccountByCredentials(attempt.Username, attempt.Password)
	if err != nil {
		return nil, err
	}
	if account == nil {
		slog.Debug("login rejected", "username", attempt.Username)
		return nil, fmt.Errorf("%w: bad credentials", ErrInvalid)
	}
	return account, nil
}

// Exists reports whether an account with the given id is on record.
func (s *AccountService) Exists(accountID int) (bool, error) {
	account, err := s.store.GetAccountByID(accountID)
	if err != nil {
		return false, err
	}
	return account != nil, nil
}
