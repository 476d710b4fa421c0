package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Session is one entry of the login stack: the authenticated identity,
// the privilege snapshot taken at login time, and the isbn of the
// currently selected book (empty when nothing is selected). The
// privilege is deliberately not re-read from the account store after
// login.
type Session struct {
	UserID       string
	Privilege    int
	SelectedISBN string
}

// ParseSession decodes one comma-separated login line:
// userid,privilege,selected_isbn. The selected isbn may contain commas,
// so it runs from the second comma to end of line.
func ParseSession(line string) (Session, error) {
	p1 := strings.Index(line, ",")
	if p1 < 0 {
		return Session{}, fmt.Errorf("login line %q: missing privilege field", line)
	}
	p2 := strings.Index(line[p1+1:], ",")
	if p2 < 0 {
		return Session{}, fmt.Errorf("login line %q: missing selection field", line)
	}
	p2 += p1 + 1
	priv, err := strconv.Atoi(line[p1+1 : p2])
	if err != nil {
		return Session{}, fmt.Errorf("login line %q: bad privilege: %w", line, err)
	}
	return Session{
		UserID:       line[:p1],
		Privilege:    priv,
		SelectedISBN: line[p2+1:],
	}, nil
}

// Line encodes the session in the persisted format.
func (s Session) Line() string {
	return fmt.Sprintf("%s,%d,%s", s.UserID, s.Privilege, s.SelectedISBN)
}
