package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Account
		wantErr bool
	}{
		{
			name: "root seed",
			line: "root,sjtu,root,7",
			want: Account{UserID: "root", Password: "sjtu", UserName: "root", Privilege: 7},
		},
		{
			name: "username with comma",
			line: "u1,pw,Smith, John,1",
			want: Account{UserID: "u1", Password: "pw", UserName: "Smith, John", Privilege: 1},
		},
		{name: "missing fields", line: "u1,pw", wantErr: true},
		{name: "no commas", line: "garbage", wantErr: true},
		{name: "bad privilege", line: "u1,pw,name,seven", wantErr: true},
		{name: "empty userid", line: ",pw,name,1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAccount(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAccountLine_RoundTrip(t *testing.T) {
	a := Account{UserID: "clerk_1", Password: "pw_9", UserName: "Front Desk", Privilege: 3}
	got, err := ParseAccount(a.Line())
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestParseBook(t *testing.T) {
	got, err := ParseBook("978-0-13\tThe Go Way\tDonovan\tgo|lang\t25.50\t12")
	require.NoError(t, err)
	assert.Equal(t, Book{
		ISBN: "978-0-13", Name: "The Go Way", Author: "Donovan",
		Keyword: "go|lang", Price: 25.5, Stock: 12,
	}, got)

	for _, bad := range []string{
		"",
		"isbn\tname\tauthor\tkw\t1.00",
		"isbn\tname\tauthor\tkw\tprice\t3",
		"isbn\tname\tauthor\tkw\t1.00\tlots",
		"\tname\tauthor\tkw\t1.00\t3",
	} {
		_, err := ParseBook(bad)
		assert.Error(t, err, bad)
	}
}

func TestBookLine_FixedPrecision(t *testing.T) {
	b := Book{ISBN: "x1", Price: 3, Stock: 7}
	assert.Equal(t, "x1\t\t\t\t3.00\t7", b.Line())
}

func TestBookHasKeywordSegment(t *testing.T) {
	b := Book{Keyword: "fantasy|magic|dragons"}
	assert.True(t, b.HasKeywordSegment("magic"))
	assert.False(t, b.HasKeywordSegment("mag"))
	assert.False(t, b.HasKeywordSegment("Magic"))
	assert.False(t, b.HasKeywordSegment(""))
}

func TestParseSession(t *testing.T) {
	got, err := ParseSession("root,7,978-0-13")
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: "root", Privilege: 7, SelectedISBN: "978-0-13"}, got)

	got, err = ParseSession("u1,1,")
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: "u1", Privilege: 1}, got)

	for _, bad := range []string{"", "u1", "u1,7", "u1,seven,isbn"} {
		_, err := ParseSession(bad)
		assert.Error(t, err, bad)
	}
}
