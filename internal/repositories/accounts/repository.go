// Package accounts is the flat-file account store. Records live in
// memory and are flushed wholesale to the store file after every
// successful mutating command.
package accounts

import (
	"context"

	"bookstore/internal/models"
)

// Repository is the account store contract used by the command
// processor.
//
// Find returns a pointer into the live collection so callers can edit a
// record in place before Save; the pointer stays valid until the next
// Add or Remove.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Find(userID string) (*models.Account, bool)
	Add(ctx context.Context, a models.Account) error
	Remove(ctx context.Context, userID string) error
	All() []models.Account
}
