package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/common"
	"bookstore/internal/models"
)

func newTestStack(t *testing.T) *Stack {
	t.Helper()
	return NewStack(filepath.Join(t.TempDir(), "login.dat"))
}

func TestStack_PrivilegeFollowsTop(t *testing.T) {
	s := newTestStack(t)
	assert.Equal(t, 0, s.CurrentPrivilege())

	s.Push("root", models.PrivilegeAdmin)
	assert.Equal(t, 7, s.CurrentPrivilege())

	s.Push("alice", models.PrivilegeCustomer)
	assert.Equal(t, 1, s.CurrentPrivilege())

	require.NoError(t, s.Pop())
	assert.Equal(t, 7, s.CurrentPrivilege())
}

func TestStack_PopEmpty(t *testing.T) {
	s := newTestStack(t)
	err := s.Pop()
	require.ErrorIs(t, err, common.ErrEmptyStack)
}

func TestStack_ContainsAnyDepth(t *testing.T) {
	s := newTestStack(t)
	s.Push("root", 7)
	s.Push("alice", 1)

	assert.True(t, s.Contains("root"), "entry below top still counts")
	assert.True(t, s.Contains("alice"))
	assert.False(t, s.Contains("bob"))
}

func TestStack_TopSelection(t *testing.T) {
	s := newTestStack(t)
	require.Nil(t, s.Top())

	s.Push("clerk", 3)
	top := s.Top()
	require.NotNil(t, top)
	top.SelectedISBN = "isbn-1"

	// a new login starts without a selection
	s.Push("root", 7)
	assert.Empty(t, s.Top().SelectedISBN)

	// popping back reveals the old selection untouched
	require.NoError(t, s.Pop())
	assert.Equal(t, "isbn-1", s.Top().SelectedISBN)
}

func TestStack_SaveMirrorsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.dat")
	s := NewStack(path)
	ctx := context.Background()

	s.Push("root", 7)
	s.Top().SelectedISBN = "978-0"
	s.Push("alice", 1)
	require.NoError(t, s.Save(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root,7,978-0\nalice,1,\n", string(data))

	require.NoError(t, s.Pop())
	require.NoError(t, s.Save(ctx))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root,7,978-0\n", string(data))
}
