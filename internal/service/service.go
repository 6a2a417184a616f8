// Package service holds the business rules for accounts and messages. Every
// operation either returns a value, (nil, nil) for a valid "no such entity"
// outcome, or an error: ErrInvalid for a rejected request, anything else for
// a storage failure. The HTTP layer maps both error kinds to the same status
// per endpoint; only the logs tell them apart.
package service

import "errors"

// ErrInvalid marks a validation or business-rule rejection.
var ErrInvalid = errors.New("invalid request")
