// Package session implements the nested login stack. Each su without a
// matching logout layers a new entry on top; the top entry's privilege
// snapshot and book selection drive every authorization and editing
// decision.
//
// The stack is mirrored to a file after every push, pop or selection
// change so login state can be inspected between command batches, but
// the mirror is never read back: every run starts with an empty stack.
package session

import (
	"context"
	"fmt"

	"bookstore/internal/common"
	"bookstore/internal/filex"
	"bookstore/internal/models"
)

type Stack struct {
	path    string
	entries []models.Session
}

func NewStack(path string) *Stack {
	return &Stack{path: path}
}

// CurrentPrivilege returns the privilege of the top entry, or 0 when
// nobody is logged in.
func (s *Stack) CurrentPrivilege() int {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].Privilege
}

// Push layers a new login with no selection on top of the stack.
func (s *Stack) Push(userID string, privilege int) {
	s.entries = append(s.entries, models.Session{UserID: userID, Privilege: privilege})
}

// Pop removes the top entry. Fails with ErrEmptyStack when there is no
// active login.
func (s *Stack) Pop() error {
	if len(s.entries) == 0 {
		return common.ErrEmptyStack
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// Top returns a mutable pointer to the top entry, or nil when the stack
// is empty. The pointer stays valid until the next Push or Pop.
func (s *Stack) Top() *models.Session {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Contains reports whether the given identity is logged in anywhere in
// the stack, not just on top. delete refuses accounts for which this
// holds.
func (s *Stack) Contains(userID string) bool {
	for _, e := range s.entries {
		if e.UserID == userID {
			return true
		}
	}
	return false
}

// Depth returns the number of active logins.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Save rewrites the mirror file with the current stack, bottom first.
func (s *Stack) Save(ctx context.Context) error {
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		lines = append(lines, e.Line())
	}
	if err := filex.WriteLines(s.path, lines); err != nil {
		return fmt.Errorf("login mirror: %w", err)
	}
	return nil
}
