package books

import (
	"context"
	"fmt"

	"bookstore/internal/common"
	"bookstore/internal/filex"
	"bookstore/internal/logging"
	"bookstore/internal/models"
)

type FileRepository struct {
	path  string
	log   logging.Logger
	books []models.Book
}

func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

// Load reads the store file. A missing file simply means an empty
// catalog. Malformed lines are logged and dropped.
func (r *FileRepository) Load(ctx context.Context) error {
	lines, existed, err := filex.ReadLines(r.path)
	if err != nil {
		return err
	}
	if !existed {
		r.books = nil
		return nil
	}

	r.books = r.books[:0]
	for _, line := range lines {
		b, err := models.ParseBook(line)
		if err != nil {
			r.log.Warn(ctx, "dropping corrupt book record", "err", err)
			continue
		}
		r.books = append(r.books, b)
	}
	r.log.Info(ctx, "book store loaded", "records", len(r.books))
	return nil
}

// Save overwrites the store file with the full catalog, one record per
// line, in insertion order.
func (r *FileRepository) Save(ctx context.Context) error {
	lines := make([]string, 0, len(r.books))
	for _, b := range r.books {
		lines = append(lines, b.Line())
	}
	return filex.WriteLines(r.path, lines)
}

// Find scans for the book with the given isbn (case-sensitive exact
// match).
func (r *FileRepository) Find(isbn string) (*models.Book, bool) {
	for i := range r.books {
		if r.books[i].ISBN == isbn {
			return &r.books[i], true
		}
	}
	return nil, false
}

// Add appends a new book and flushes. Fails with ErrDuplicate when the
// isbn is already in the catalog.
func (r *FileRepository) Add(ctx context.Context, b models.Book) error {
	if _, ok := r.Find(b.ISBN); ok {
		return fmt.Errorf("book %s: %w", b.ISBN, common.ErrDuplicate)
	}
	r.books = append(r.books, b)
	return r.Save(ctx)
}

// All returns the live catalog in insertion order.
func (r *FileRepository) All() []models.Book {
	return r.books
}
