// Package books is the flat-file book catalog store.
package books

import (
	"context"

	"bookstore/internal/models"
)

// Repository is the catalog contract used by the command processor.
// Find returns a pointer into the live collection (valid until the next
// Add) so select/modify/import/buy can edit a record in place before
// Save.
type Repository interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Find(isbn string) (*models.Book, bool)
	Add(ctx context.Context, b models.Book) error
	All() []models.Book
}
