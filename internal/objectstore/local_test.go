package objectstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_WritesAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:3000/avatars/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "u1.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/avatars/u1.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "u1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	_, err = store.Put(context.Background(), "u1.jpg", []byte("replaced"))
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "u1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:3000/avatars")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "u1.jpg", []byte("jpeg"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "u1.jpg"))
	_, err = os.Stat(filepath.Join(dir, "u1.jpg"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(context.Background(), "u1.jpg"), "missing objects delete cleanly")
	assert.ErrorIs(t, store.Delete(context.Background(), "../u1.jpg"), ErrInvalidKey)
}

func TestPut_RejectsUnsafeKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:3000/avatars")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.jpg", "/abs.jpg", "a/../../b", ".hidden", `a\b.jpg`, "a//b"} {
		_, err := store.Put(context.Background(), key, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestHandler_ServesObjects(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:3000/avatars")
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "u1.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.StripPrefix("/avatars/", store.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/avatars/u1.jpg")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jpeg bytes", string(body))

	resp, err = http.Get(srv.URL + "/avatars/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
