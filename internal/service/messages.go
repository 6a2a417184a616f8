package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dkhalil/blurt/internal/models"
	"github.com/dkhalil/blurt/internal/store"
)

// AccountChecker is the capability MessageService needs from the account side:
// just "does this account exist". AccountService implements it.
type AccountChecker interface {
	Exists(accountID int) (bool, error)
}

const maxMessageLength = 255

type MessageService struct {
	store    store.MessageStore
	accounts AccountChecker
}

func NewMessageService(s store.MessageStore, accounts AccountChecker) *MessageService {
	return &MessageService{store: s, accounts: accounts}
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: message_text must not be blank", ErrInvalid)
	}
	if len(text) > maxMessageLength {
		return fmt.Errorf("%w: message_text must be at most %d characters", ErrInvalid, maxMessageLength)
	}
	return nil
}

// Create validates the text, verifies the poster exists, then persists.
func (s *MessageService) Create(message models.Message) (*models.Message, error) {
	if err := validateText(message.Text); err != nil {
		slog.Debug("message rejected", "posted_by", message.PostedBy, "reason", err)
		return nil, err
	}

	exists, err := s.accounts.Exists(message.PostedBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		slog.Debug("message rejected: unknown poster", "posted_by", message.PostedBy)
		return nil, fmt.Errorf("%w: posted_by does not refer to an account", ErrInvalid)
	}

	created, err := s.store.CreateMessage(message.PostedBy, message.Text, message.TimePostedEpoch)
	if err != nil {
		return nil, err
	}
	slog.Info("message created", "message_id", created.ID, "posted_by", created.PostedBy)
	return created, nil
}

func (s *MessageService) GetAll() ([]models.Message, error) {
	return s.store.GetAllMessages()
}

// GetByID returns (nil, nil) when the message does not exist; that is a valid
// outcome, not an error.
func (s *MessageService) GetByID(id int) (*models.Message, error) {
	return s.store.GetMessageByID(id)
}

// Delete is idempotent: deleting an absent id returns (nil, nil).
func (s *MessageService) Delete(id int) (*models.Message, error) {
	return s.store.DeleteMessage(id)
}

// Update re-validates the new text with the creation rules and requires the
// target message to exist.
func (s *MessageService) Update(id int, text string) (*models.Message, error) {
	if err := validateText(text); err != nil {
		slog.Debug("update rejected", "message_id", id, "reason", err)
		return nil, err
	}

	existing, err := s.store.GetMessageByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		slog.Debug("update rejected: no such message", "message_id", id)
		return nil, fmt.Errorf("%w: no message with id %d", ErrInvalid, id)
	}

	return s.store.UpdateMessageText(id, text)
}

// GetByAccount lists an account's messages. An unknown account and an account
// with no messages both come back as an empty list.
func (s *MessageService) GetByAccount(accountID int) ([]models.Message, error) {
	return s.store.GetMessagesByAccount(accountID)
}
