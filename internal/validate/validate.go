// Package validate contains the pure field predicates used by the
// command processor. Every function is total over arbitrary strings and
// never panics; malformed input yields false, not an error.
package validate

import "strings"

// KeywordSeparator joins the segments of a book's keyword string.
const KeywordSeparator = "|"

const (
	maxUserID   = 30
	maxUserName = 30
	maxISBN     = 20
	maxBookText = 60
)

func isWordChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_'
}

// UserID reports whether s is a valid account id: at most 30 bytes of
// alphanumerics and underscores. The empty string is accepted here;
// commands that require a non-empty id check that at the parse step.
func UserID(s string) bool {
	if len(s) > maxUserID {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}

// Password shares the userid charset and length rules.
func Password(s string) bool {
	return UserID(s)
}

// UserName reports whether s is a valid account display name: at most
// 30 bytes, no double quote and no line break.
func UserName(s string) bool {
	return printableField(s, maxUserName)
}

// Privilege reports whether s is a privilege literal: exactly "1", "3"
// or "7".
func Privilege(s string) bool {
	return s == "1" || s == "3" || s == "7"
}

// ISBN reports whether s is a valid book identifier: at most 20 bytes
// with no line break. Quotes are allowed.
func ISBN(s string) bool {
	if len(s) > maxISBN {
		return false
	}
	return !strings.ContainsAny(s, "\n\r")
}

// BookText reports whether s is a valid book name or author: at most 60
// bytes, no double quote and no line break.
func BookText(s string) bool {
	return printableField(s, maxBookText)
}

// Keyword reports whether s is a valid full keyword string by charset
// and length. Segment rules are checked by KeywordSegmentsUnique.
func Keyword(s string) bool {
	return printableField(s, maxBookText)
}

// KeywordSegmentsUnique splits s on the segment separator and reports
// whether every segment is non-empty and occurs exactly once.
func KeywordSegmentsUnique(s string) bool {
	seen := make(map[string]struct{})
	for _, seg := range strings.Split(s, KeywordSeparator) {
		if seg == "" {
			return false
		}
		if _, dup := seen[seg]; dup {
			return false
		}
		seen[seg] = struct{}{}
	}
	return true
}

// PositiveInt reports whether s is a strictly positive base-10 integer
// written with digits only (no sign, no spaces). Leading zeros are
// accepted; "0" and "" are not.
func PositiveInt(s string) bool {
	if s == "" {
		return false
	}
	allZero := true
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		if s[i] != '0' {
			allZero = false
		}
	}
	return !allZero
}

// PositiveDecimal reports whether s consists of digits with at most one
// decimal point and parses to a value greater than zero.
func PositiveDecimal(s string) bool {
	return decimal(s, false)
}

// NonNegativeDecimal is PositiveDecimal with zero allowed. Used by the
// price field of modify.
func NonNegativeDecimal(s string) bool {
	return decimal(s, true)
}

func decimal(s string, zeroOK bool) bool {
	if s == "" {
		return false
	}
	dots := 0
	nonZeroDigit := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case s[i] >= '0' && s[i] <= '9':
			if s[i] != '0' {
				nonZeroDigit = true
			}
		default:
			return false
		}
	}
	if dots > 1 || len(s) == dots {
		return false
	}
	return zeroOK || nonZeroDigit
}

func printableField(s string, max int) bool {
	if len(s) > max {
		return false
	}
	return !strings.ContainsAny(s, "\"\n\r")
}
