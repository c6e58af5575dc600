package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceFor(t *testing.T) {
	ref, err := ReferenceFor("Q3 sales.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "private/uploads/Q3 sales.xlsx", ref)

	ref, err = ReferenceFor("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "private/uploads/passwd", ref)

	ref, err = ReferenceFor(`C:\Users\me\book.csv`)
	require.NoError(t, err)
	assert.Equal(t, "private/uploads/book.csv", ref)

	for _, bad := range []string{"", ".", ".."} {
		_, err := ReferenceFor(bad)
		assert.ErrorIs(t, err, ErrInvalidName, bad)
	}
}

func TestKeyFromReference(t *testing.T) {
	assert.Equal(t, "book.csv", KeyFromReference("private/uploads/book.csv"))
	assert.Equal(t, "book.csv", KeyFromReference("/private/uploads/book.csv"))
	assert.Equal(t, "other/book.csv", KeyFromReference("other/book.csv"))
}

func TestStoresRoundTrip(t *testing.T) {
	stores := map[string]BlobStore{
		"memory": NewMemoryStore(),
		"local":  NewLocalStore(t.TempDir()),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Download(ctx, "missing.csv")
			assert.ErrorIs(t, err, ErrObjectNotFound)

			require.NoError(t, store.Upload(ctx, "book.csv", bytes.NewReader([]byte("a,b\n1,2\n")), "text/csv"))
			data, err := store.Download(ctx, "book.csv")
			require.NoError(t, err)
			assert.Equal(t, "a,b\n1,2\n", string(data))
		})
	}
}

func TestLocalStoreStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	require.NoError(t, store.Upload(context.Background(), "../escape.csv", bytes.NewReader([]byte("x")), ""))
	data, err := store.Download(context.Background(), "escape.csv")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
