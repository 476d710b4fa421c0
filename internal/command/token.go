// Package command implements the command protocol: the line tokenizer,
// the parser producing one typed command per protocol verb, and the
// processor that authorizes and applies commands against the record
// stores.
package command

import "strings"

// arrow forms accepted in the optional leading line-number decoration,
// e.g. "12 → su root sjtu" or "12 -> su root sjtu".
const (
	arrowUTF8  = "→"
	arrowASCII = "->"
)

// StripPrefix removes an optional numeric-prefix marker (digits and
// spaces followed by an arrow token) from the start of the line, along
// with any spaces after the arrow. Lines without the decoration pass
// through unchanged.
func StripPrefix(line string) string {
	for _, arrow := range []string{arrowUTF8, arrowASCII} {
		p := strings.Index(line, arrow)
		if p < 0 || !digitsAndSpaces(line[:p]) {
			continue
		}
		return strings.TrimLeft(line[p+len(arrow):], " ")
	}
	return line
}

func digitsAndSpaces(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}

// Tokenize splits a line into tokens on single spaces. A token that
// begins with a double quote runs to the next double quote with embedded
// spaces preserved and the quote characters excluded; an unterminated
// quote runs to end of line. Quotes in the middle of an unquoted token
// are kept verbatim.
func Tokenize(line string) []string {
	var tokens []string
	i, n := 0, len(line)
	for i < n {
		for i < n && line[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}
		if line[i] == '"' {
			i++
			start := i
			for i < n && line[i] != '"' {
				i++
			}
			tokens = append(tokens, line[start:i])
			if i < n {
				i++ // closing quote
			}
			continue
		}
		start := i
		for i < n && line[i] != ' ' {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return tokens
}
