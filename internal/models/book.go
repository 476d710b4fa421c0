package models

import (
	"fmt"
	"strconv"
	"strings"

	"bookstore/internal/validate"
)

// Book is one catalog record. ISBN is the unique key. Keyword holds the
// separator-joined segment list; Price is rendered with two decimals
// everywhere it is shown or stored.
type Book struct {
	ISBN    string
	Name    string
	Author  string
	Keyword string
	Price   float64
	Stock   int64
}

// ParseBook decodes one tab-separated book line:
// isbn,name,author,keyword,price,stock. Exactly six fields are
// expected; a line that splits into any other count is malformed and
// gets dropped by the store on load.
func ParseBook(line string) (Book, error) {
	f := strings.Split(line, "\t")
	if len(f) != 6 {
		return Book{}, fmt.Errorf("book line %q: want 6 fields, got %d", line, len(f))
	}
	price, err := strconv.ParseFloat(f[4], 64)
	if err != nil {
		return Book{}, fmt.Errorf("book line %q: bad price: %w", line, err)
	}
	stock, err := strconv.ParseInt(f[5], 10, 64)
	if err != nil {
		return Book{}, fmt.Errorf("book line %q: bad stock: %w", line, err)
	}
	b := Book{
		ISBN:    f[0],
		Name:    f[1],
		Author:  f[2],
		Keyword: f[3],
		Price:   price,
		Stock:   stock,
	}
	if b.ISBN == "" {
		return Book{}, fmt.Errorf("book line %q: empty isbn", line)
	}
	return b, nil
}

// Line encodes the book in the persisted format, which doubles as the
// record format of the show command.
func (b Book) Line() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%.2f\t%d",
		b.ISBN, b.Name, b.Author, b.Keyword, b.Price, b.Stock)
}

// HasKeywordSegment reports whether seg equals one of the book's
// keyword segments exactly (case-sensitive).
func (b Book) HasKeywordSegment(seg string) bool {
	for _, s := range strings.Split(b.Keyword, validate.KeywordSeparator) {
		if s == seg {
			return true
		}
	}
	return false
}
