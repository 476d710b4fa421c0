// Package models defines the record types persisted by the bookstore
// and their flat-file line codecs. Each record occupies one line of its
// store file; parsing is lenient (a malformed line yields an error the
// stores treat as "skip this record") while formatting is exact, since
// the file layouts are part of the external contract.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Privilege levels gate which commands an identity may invoke.
const (
	PrivilegeCustomer = 1
	PrivilegeStaff    = 3
	PrivilegeAdmin    = 7
)

// Account is one user record. UserID is the unique key.
type Account struct {
	UserID    string
	Password  string
	UserName  string
	Privilege int
}

// ParseAccount decodes one comma-separated account line:
// userid,password,username,privilege. The username may itself contain
// commas, so the privilege is taken from the last comma and the
// password from the second.
func ParseAccount(line string) (Account, error) {
	p1 := strings.Index(line, ",")
	if p1 < 0 {
		return Account{}, fmt.Errorf("account line %q: missing password field", line)
	}
	p2 := strings.Index(line[p1+1:], ",")
	if p2 < 0 {
		return Account{}, fmt.Errorf("account line %q: missing username field", line)
	}
	p2 += p1 + 1
	plast := strings.LastIndex(line, ",")
	if plast == p2 {
		return Account{}, fmt.Errorf("account line %q: missing privilege field", line)
	}
	priv, err := strconv.Atoi(line[plast+1:])
	if err != nil {
		return Account{}, fmt.Errorf("account line %q: bad privilege: %w", line, err)
	}
	a := Account{
		UserID:    line[:p1],
		Password:  line[p1+1 : p2],
		UserName:  line[p2+1 : plast],
		Privilege: priv,
	}
	if a.UserID == "" {
		return Account{}, fmt.Errorf("account line %q: empty userid", line)
	}
	return a, nil
}

// Line encodes the account in the persisted format.
func (a Account) Line() string {
	return fmt.Sprintf("%s,%s,%s,%d", a.UserID, a.Password, a.UserName, a.Privilege)
}
