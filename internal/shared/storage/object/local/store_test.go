package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	payload := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	key, size, mimeType, err := store.Save(context.Background(), "session-1", "resume.pdf", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)
	assert.Equal(t, "application/pdf", mimeType)
	assert.True(t, strings.HasSuffix(key, "_resume.pdf"))
	assert.NotContains(t, key, "session-1")

	rc, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSaveRejectsTraversalName(t *testing.T) {
	store := New(t.TempDir())
	_, _, _, err := store.Save(context.Background(), "s", "../../etc/passwd", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestOpenRejectsTraversalKey(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "../outside")
	assert.Error(t, err)
}

func TestSaveHonoursCancelledContext(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err := store.Save(ctx, "s", "resume.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
