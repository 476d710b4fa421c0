package accounts

import (
	"context"
	"fmt"

	"bookstore/internal/common"
	"bookstore/internal/filex"
	"bookstore/internal/logging"
	"bookstore/internal/models"
)

// The distinguished administrator account synthesized on first run.
var rootSeed = models.Account{
	UserID:    "root",
	Password:  "sjtu",
	UserName:  "root",
	Privilege: models.PrivilegeAdmin,
}

type FileRepository struct {
	path     string
	log      logging.Logger
	accounts []models.Account
}

func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

// Load reads the store file. When the file does not exist yet, the root
// account is synthesized and persisted immediately. Malformed lines are
// logged and dropped, not repaired.
func (r *FileRepository) Load(ctx context.Context) error {
	lines, existed, err := filex.ReadLines(r.path)
	if err != nil {
		return err
	}
	if !existed {
		r.accounts = []models.Account{rootSeed}
		r.log.Info(ctx, "account store missing, seeding root", "path", r.path)
		return r.Save(ctx)
	}

	r.accounts = r.accounts[:0]
	for _, line := range lines {
		a, err := models.ParseAccount(line)
		if err != nil {
			r.log.Warn(ctx, "dropping corrupt account record", "err", err)
			continue
		}
		r.accounts = append(r.accounts, a)
	}
	r.log.Info(ctx, "account store loaded", "records", len(r.accounts))
	return nil
}

// Save overwrites the store file with the full collection, one record
// per line, in insertion order.
func (r *FileRepository) Save(ctx context.Context) error {
	lines := make([]string, 0, len(r.accounts))
	for _, a := range r.accounts {
		lines = append(lines, a.Line())
	}
	return filex.WriteLines(r.path, lines)
}

// Find scans for the account with the given id (case-sensitive exact
// match).
func (r *FileRepository) Find(userID string) (*models.Account, bool) {
	for i := range r.accounts {
		if r.accounts[i].UserID == userID {
			return &r.accounts[i], true
		}
	}
	return nil, false
}

// Add appends a new account and flushes. Fails with ErrDuplicate when
// the id is already taken.
func (r *FileRepository) Add(ctx context.Context, a models.Account) error {
	if _, ok := r.Find(a.UserID); ok {
		return fmt.Errorf("account %s: %w", a.UserID, common.ErrDuplicate)
	}
	r.accounts = append(r.accounts, a)
	return r.Save(ctx)
}

// Remove deletes the account with the given id and flushes. Fails with
// ErrNotFound when no such account exists.
func (r *FileRepository) Remove(ctx context.Context, userID string) error {
	for i := range r.accounts {
		if r.accounts[i].UserID == userID {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return r.Save(ctx)
		}
	}
	return fmt.Errorf("account %s: %w", userID, common.ErrNotFound)
}

// All returns the live collection in insertion order.
func (r *FileRepository) All() []models.Account {
	return r.accounts
}
