package store

import "github.com/dkhalil/blurt/internal/models"

// Reads return (nil, nil) when no row matches; a non-nil error means the
// store itself failed. List reads return an empty slice, never nil.

type AccountStore interface {
	CreateAccount(username, password string) (*models.Account, error)
	GetAccountByUsername(username string) (*models.Account, error)
	GetAccountByCredentials(username, password string) (*models.Account, error)
	GetAccountByID(id int) (*models.Account, error)
}

type MessageStore interface {
	CreateMessage(postedBy int, text string, timePostedEpoch int64) (*models.Message, error)
	GetAllMessages() ([]models.Message, error)
	GetMessageByID(id int) (*models.Message, error)
	DeleteMessage(id int) (*models.Message, error)
	UpdateMessageText(id int, text string) (*models.Message, error)
	GetMessagesByAccount(accountID int) ([]models.Message, error)
}
