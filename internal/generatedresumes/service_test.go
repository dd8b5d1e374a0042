package generatedresumes

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Service{
		Repo:  NewMemoryRepo(),
		Store: local.New(t.TempDir()),
		Now:   func() time.Time { return fixed },
	}
}

func TestGenerateStoresAndRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, data, err := svc.Generate(ctx, "sess-1", sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", rec.OwnerName)
	assert.Equal(t, "application/pdf", rec.MimeType)
	assert.Equal(t, int64(len(data)), rec.SizeBytes)

	_, rc, err := svc.Open(ctx, "sess-1", rec.ID)
	require.NoError(t, err)
	defer rc.Close()
	stored, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	list, err := svc.List(ctx, "sess-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestGenerateValidatesInput(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.Generate(context.Background(), "", sampleDocument())
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.Generate(context.Background(), "s", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOtherSessionCannotOpen(t *testing.T) {
	svc := newTestService(t)
	rec, _, err := svc.Generate(context.Background(), "owner", sampleDocument())
	require.NoError(t, err)

	_, _, err = svc.Open(context.Background(), "intruder", rec.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMemoryRepoListOrderingAndPaging(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, GeneratedResume{ID: id, SessionID: "s", CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	got, err := repo.ListBySession(ctx, "s", 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	got, err = repo.ListBySession(ctx, "s", 2, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got, err = repo.ListBySession(ctx, "nobody", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
