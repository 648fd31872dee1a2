package job

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bensedjadrafik-ux/vitube-app/internal/filestore"
	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
)

type fakeUploads struct {
	stale   []*model.Upload
	deleted []string
}

func (f *fakeUploads) ListStaleUnattached(ctx context.Context, cutoff int64) ([]*model.Upload, error) {
	return f.stale, nil
}

func (f *fakeUploads) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeStore struct {
	removed []string
	failKey string
}

func (f *fakeStore) Type() string      { return "fake" }
func (f *fakeStore) PublicURL() string { return "" }

func (f *fakeStore) Save(ctx context.Context, key string, r filestore.ReadSeekCloser, size int64) error {
	return nil
}

func (f *fakeStore) Open(ctx context.Context, key string) (filestore.ReadSeekCloser, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if key == f.failKey {
		return fmt.Errorf("delete failed")
	}
	f.removed = append(f.removed, key)
	return nil
}

func TestUploadCleanupJob(t *testing.T) {
	uploads := &fakeUploads{stale: []*model.Upload{
		{Key: "old1.mp4"},
		{Key: "old2.jpg"},
	}}
	store := &fakeStore{}
	job := NewUploadCleanupJob(uploads, store, time.Hour)

	require.NoError(t, job.Run(context.Background()))
	require.Equal(t, []string{"old1.mp4", "old2.jpg"}, store.removed)
	require.Equal(t, []string{"old1.mp4", "old2.jpg"}, uploads.deleted)
}

// A failed file delete keeps the bookkeeping row so the next run tries
// again.
func TestUploadCleanupJob_FileDeleteFailureKeepsRow(t *testing.T) {
	uploads := &fakeUploads{stale: []*model.Upload{
		{Key: "stuck.mp4"},
		{Key: "ok.jpg"},
	}}
	store := &fakeStore{failKey: "stuck.mp4"}
	job := NewUploadCleanupJob(uploads, store, time.Hour)

	require.NoError(t, job.Run(context.Background()))
	require.Equal(t, []string{"ok.jpg"}, store.removed)
	require.Equal(t, []string{"ok.jpg"}, uploads.deleted)
}

// Stores without delete support still get their rows reaped.
type fakeStoreNoDelete struct{}

func (fakeStoreNoDelete) Type() string      { return "fake" }
func (fakeStoreNoDelete) PublicURL() string { return "" }
func (fakeStoreNoDelete) Save(ctx context.Context, key string, r filestore.ReadSeekCloser, size int64) error {
	return nil
}
func (fakeStoreNoDelete) Open(ctx context.Context, key string) (filestore.ReadSeekCloser, error) {
	return nil, fmt.Errorf("not supported")
}

func TestUploadCleanupJob_StoreWithoutDelete(t *testing.T) {
	uploads := &fakeUploads{stale: []*model.Upload{{Key: "old.mp4"}}}
	job := NewUploadCleanupJob(uploads, fakeStoreNoDelete{}, time.Hour)

	require.NoError(t, job.Run(context.Background()))
	require.Equal(t, []string{"old.mp4"}, uploads.deleted)
}
