package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	appErr "github.com/bensedjadrafik-ux/vitube-app/internal/pkg/errors"
)

// -------- test fakes --------

type fakeVideoStore struct {
	videos []*model.Video
}

func (f *fakeVideoStore) Create(ctx context.Context, video *model.Video) error {
	f.videos = append(f.videos, video)
	return nil
}

func (f *fakeVideoStore) List(ctx context.Context) ([]*model.Video, error) {
	out := make([]*model.Video, len(f.videos))
	copy(out, f.videos)
	return out, nil
}

func (f *fakeVideoStore) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	for _, v := range f.videos {
		if v.ID == videoID {
			return v, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeVideoStore) IncrementViews(ctx context.Context, videoID string, mtime int64) (int64, error) {
	for _, v := range f.videos {
		if v.ID == videoID {
			v.Views++
			return v.Views, nil
		}
	}
	return 0, appErr.ErrNotFound
}

type fakeCommentStore struct {
	comments []*model.Comment
}

func (f *fakeCommentStore) Create(ctx context.Context, comment *model.Comment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentStore) ListByVideo(ctx context.Context, videoID string) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range f.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) ListByVideos(ctx context.Context, videoIDs []string) ([]*model.Comment, error) {
	wanted := make(map[string]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = struct{}{}
	}
	var out []*model.Comment
	for _, c := range f.comments {
		if _, ok := wanted[c.VideoID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUploadStore struct {
	attached []string
}

func (f *fakeUploadStore) MarkAttached(ctx context.Context, key string) error {
	f.attached = append(f.attached, key)
	return nil
}

func newTestVideoService(videos *fakeVideoStore, comments *fakeCommentStore, uploads *fakeUploadStore, users UserStore) *VideoService {
	// cache disabled so fakes observe every call
	return NewVideoService(videos, comments, uploads, users, 0, 0)
}

// -------- tests --------

func TestVideoCreate(t *testing.T) {
	videos := &fakeVideoStore{}
	uploads := &fakeUploadStore{}
	svc := newTestVideoService(videos, &fakeCommentStore{}, uploads, newFakeUserStore())

	video, err := svc.Create(context.Background(), CreateVideoInput{
		Title:        "First",
		Description:  "desc",
		VideoURL:     "http://host/api/files/abc.mp4",
		ThumbnailURL: "http://host/api/files/abc.jpg",
		Channel:      "chan",
	})
	require.NoError(t, err)
	require.NotEmpty(t, video.ID)
	require.Len(t, videos.videos, 1)
	require.NotNil(t, video.Comments)
	require.Empty(t, video.Comments)
	require.Equal(t, []string{"abc.mp4", "abc.jpg"}, uploads.attached)
}

func TestVideoCreate_MissingFields(t *testing.T) {
	svc := newTestVideoService(&fakeVideoStore{}, &fakeCommentStore{}, &fakeUploadStore{}, newFakeUserStore())

	for _, in := range []CreateVideoInput{
		{VideoURL: "u", ThumbnailURL: "t", Channel: "c"},
		{Title: "a", ThumbnailURL: "t", Channel: "c"},
		{Title: "a", VideoURL: "u", Channel: "c"},
		{Title: "a", VideoURL: "u", ThumbnailURL: "t"},
	} {
		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, appErr.ErrInvalid)
	}
}

func TestAddComment(t *testing.T) {
	videos := &fakeVideoStore{videos: []*model.Video{{ID: "v1"}}}
	users := newFakeUserStore()
	require.NoError(t, users.Create(context.Background(), &model.User{ID: "u1", Name: "Alice", Email: "a@x.com"}))
	svc := newTestVideoService(videos, &fakeCommentStore{}, &fakeUploadStore{}, users)

	comments, err := svc.AddComment(context.Background(), "v1", "u1", "nice video")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "Alice", comments[0].Author)
	require.Equal(t, "nice video", comments[0].Text)
	require.Equal(t, "u1", comments[0].UserID)
}

func TestAddComment_VideoNotFound(t *testing.T) {
	svc := newTestVideoService(&fakeVideoStore{}, &fakeCommentStore{}, &fakeUploadStore{}, newFakeUserStore())

	_, err := svc.AddComment(context.Background(), "missing", "u1", "hello")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestAddComment_EmptyText(t *testing.T) {
	videos := &fakeVideoStore{videos: []*model.Video{{ID: "v1"}}}
	svc := newTestVideoService(videos, &fakeCommentStore{}, &fakeUploadStore{}, newFakeUserStore())

	_, err := svc.AddComment(context.Background(), "v1", "u1", "   ")
	require.ErrorIs(t, err, appErr.ErrInvalid)
}

func TestVideoList_AttachesComments(t *testing.T) {
	videos := &fakeVideoStore{videos: []*model.Video{{ID: "v1"}, {ID: "v2"}}}
	comments := &fakeCommentStore{comments: []*model.Comment{
		{ID: "c1", VideoID: "v1", Author: "Alice", Text: "first", Ctime: time.Now().Unix()},
	}}
	svc := newTestVideoService(videos, comments, &fakeUploadStore{}, newFakeUserStore())

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Len(t, listed[0].Comments, 1)
	require.NotNil(t, listed[1].Comments)
	require.Empty(t, listed[1].Comments)
}

func TestIncrementViews(t *testing.T) {
	videos := &fakeVideoStore{videos: []*model.Video{{ID: "v1", Views: 5}}}
	svc := newTestVideoService(videos, &fakeCommentStore{}, &fakeUploadStore{}, newFakeUserStore())

	views, err := svc.IncrementViews(context.Background(), "v1")
	require.NoError(t, err)
	require.Equal(t, int64(6), views)

	_, err = svc.IncrementViews(context.Background(), "missing")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestAssetKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"http://host/api/files/abc.mp4", "abc.mp4"},
		{"https://bucket.s3.host/prefix/key.jpg", "key.jpg"},
		{"http://host/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, assetKey(tt.raw), tt.raw)
	}
}
