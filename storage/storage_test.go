package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]KV {
	t.Helper()

	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "files"), zerolog.Nop())
	require.NoError(t, err)

	s, err := NewSQLite(filepath.Join(dir, "journal.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return map[string]KV{
		"memory": NewMemory(),
		"file":   f,
		"sqlite": s,
	}
}

func TestStoresRoundTrip(t *testing.T) {
	t.Parallel()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("tradingJournalData")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set("tradingJournalData", []byte(`{"a":1}`)))
			got, ok, err := store.Get("tradingJournalData")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, store.Set("tradingJournalData", []byte(`{"a":2}`)))
			got, ok, err = store.Get("tradingJournalData")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":2}`, string(got))
		})
	}
}

func TestMemoryQuota(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	m.Quota = 8

	require.NoError(t, m.Set("k", []byte("12345678")))
	// Replacing a key only counts the new value.
	require.NoError(t, m.Set("k", []byte("1234")))

	err := m.Set("other", []byte("12345"))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	got, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "1234", string(got))
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	require.NoError(t, m.Set("k", []byte("abc")))

	got, _, err := m.Get("k")
	require.NoError(t, err)
	got[0] = 'z'

	again, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestFileRejectsBadKeys(t *testing.T) {
	t.Parallel()

	f, err := NewFile(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, f.Set(key, []byte("x")), "key %q", key)
	}
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f, err := NewFile(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, f.Set("doc", []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv WHERE key = 'k'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		kind    string
		path    string
		wantErr bool
	}{
		{kind: TypeMemory},
		{kind: TypeFile, path: filepath.Join(dir, "files")},
		{kind: TypeSQLite, path: filepath.Join(dir, "db", "journal.db")},
		{kind: "redis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			kv, err := Open(tt.kind, tt.path, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer kv.Close()

			require.NoError(t, kv.Set("k", []byte("v")))
			got, ok, err := kv.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", string(got))
		})
	}
}
