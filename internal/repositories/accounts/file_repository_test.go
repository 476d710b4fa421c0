package accounts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/common"
	"bookstore/internal/logging"
	"bookstore/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_SeedsRootOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	r := NewFileRepository(path, testLogger())
	ctx := context.Background()

	require.NoError(t, r.Load(ctx))

	a, ok := r.Find("root")
	require.True(t, ok)
	assert.Equal(t, "sjtu", a.Password)
	assert.Equal(t, models.PrivilegeAdmin, a.Privilege)

	// the seed must hit the disk, not just memory
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root,sjtu,root,7\n", string(data))
}

func TestLoad_SkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	content := "root,sjtu,root,7\n" +
		"not a record\n" +
		"u1,pw,name,NaN\n" +
		"alice,pw1,Alice,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))

	r := NewFileRepository(path, testLogger())
	require.NoError(t, r.Load(context.Background()))

	assert.Len(t, r.All(), 2)
	_, ok := r.Find("alice")
	assert.True(t, ok)
}

func TestAdd_RejectsDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	r := NewFileRepository(path, testLogger())
	ctx := context.Background()
	require.NoError(t, r.Load(ctx))

	require.NoError(t, r.Add(ctx, models.Account{UserID: "u1", Password: "p1", UserName: "n1", Privilege: 1}))

	err := r.Add(ctx, models.Account{UserID: "u1", Password: "p2", UserName: "n2", Privilege: 1})
	require.ErrorIs(t, err, common.ErrDuplicate)

	// the first registration wins and survives a reload
	r2 := NewFileRepository(path, testLogger())
	require.NoError(t, r2.Load(ctx))
	a, ok := r2.Find("u1")
	require.True(t, ok)
	assert.Equal(t, "p1", a.Password)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	r := NewFileRepository(path, testLogger())
	ctx := context.Background()
	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Add(ctx, models.Account{UserID: "gone", Privilege: 1}))

	require.NoError(t, r.Remove(ctx, "gone"))
	_, ok := r.Find("gone")
	assert.False(t, ok)

	err := r.Remove(ctx, "gone")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFind_EditInPlaceThenSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	r := NewFileRepository(path, testLogger())
	ctx := context.Background()
	require.NoError(t, r.Load(ctx))

	a, ok := r.Find("root")
	require.True(t, ok)
	a.Password = "newpass"
	require.NoError(t, r.Save(ctx))

	r2 := NewFileRepository(path, testLogger())
	require.NoError(t, r2.Load(ctx))
	got, ok := r2.Find("root")
	require.True(t, ok)
	assert.Equal(t, "newpass", got.Password)
}

func TestRoundTrip_PreservesUserPrivilegePairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	ctx := context.Background()

	r := NewFileRepository(path, testLogger())
	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Add(ctx, models.Account{UserID: "clerk", Password: "p", UserName: "Clerk", Privilege: 3}))
	require.NoError(t, r.Add(ctx, models.Account{UserID: "buyer", Password: "p", UserName: "Buyer", Privilege: 1}))

	r2 := NewFileRepository(path, testLogger())
	require.NoError(t, r2.Load(ctx))

	want := map[string]int{"root": 7, "clerk": 3, "buyer": 1}
	got := map[string]int{}
	for _, a := range r2.All() {
		got[a.UserID] = a.Privilege
	}
	assert.Equal(t, want, got)
}
