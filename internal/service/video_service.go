package service

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	appErr "github.com/bensedjadrafik-ux/vitube-app/internal/pkg/errors"
	"github.com/bensedjadrafik-ux/vitube-app/internal/videocache"
)

type VideoStore interface {
	Create(ctx context.Context, video *model.Video) error
	List(ctx context.Context) ([]*model.Video, error)
	GetByID(ctx context.Context, videoID string) (*model.Video, error)
	IncrementViews(ctx context.Context, videoID string, mtime int64) (int64, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByVideo(ctx context.Context, videoID string) ([]*model.Comment, error)
	ListByVideos(ctx context.Context, videoIDs []string) ([]*model.Comment, error)
}

type UploadStore interface {
	MarkAttached(ctx context.Context, key string) error
}

type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Channel      string
}

type VideoService struct {
	videos   VideoStore
	comments CommentStore
	uploads  UploadStore
	users    UserStore
	lister   *videocache.CachedLister
}

func NewVideoService(videos VideoStore, comments CommentStore, uploads UploadStore, users UserStore, cacheSize int, cacheTTL time.Duration) *VideoService {
	s := &VideoService{
		videos:   videos,
		comments: comments,
		uploads:  uploads,
		users:    users,
	}
	s.lister = videocache.Wrap(&assembledLister{videos: videos, comments: comments}, cacheSize, cacheTTL)
	return s
}

// List returns the catalog, newest first, each video carrying its
// comments. Served through the listing cache; view counters may lag by
// up to the cache TTL.
func (s *VideoService) List(ctx context.Context) ([]*model.Video, error) {
	return s.lister.List(ctx)
}

func (s *VideoService) Create(ctx context.Context, in CreateVideoInput) (*model.Video, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Channel = strings.TrimSpace(in.Channel)
	if in.Title == "" || in.VideoURL == "" || in.ThumbnailURL == "" || in.Channel == "" {
		return nil, appErr.ErrInvalid
	}
	now := time.Now().Unix()
	video := &model.Video{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Channel:      in.Channel,
		Ctime:        now,
		Mtime:        now,
		Comments:     []*model.Comment{},
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	s.markUploadsAttached(ctx, in.VideoURL, in.ThumbnailURL)
	s.lister.Purge()
	return video, nil
}

// AddComment appends a comment authored by the token subject and
// returns the video's full comment list, which is what clients render.
func (s *VideoService) AddComment(ctx context.Context, videoID, userID, text string) ([]*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, appErr.ErrInvalid
	}
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, appErr.ErrUnauthorized
		}
		return nil, err
	}
	comment := &model.Comment{
		ID:      newID(),
		VideoID: videoID,
		UserID:  user.ID,
		Author:  user.Name,
		Text:    text,
		Ctime:   time.Now().Unix(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.lister.Purge()
	return s.comments.ListByVideo(ctx, videoID)
}

// IncrementViews bumps the view counter. The listing cache is not
// purged here; counters are allowed to lag by the cache TTL.
func (s *VideoService) IncrementViews(ctx context.Context, videoID string) (int64, error) {
	return s.videos.IncrementViews(ctx, videoID, time.Now().Unix())
}

func (s *VideoService) markUploadsAttached(ctx context.Context, urls ...string) {
	if s.uploads == nil {
		return
	}
	for _, raw := range urls {
		key := assetKey(raw)
		if key == "" {
			continue
		}
		if err := s.uploads.MarkAttached(ctx, key); err != nil {
			logutil.GetLogger(ctx).Warn("mark upload attached failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// assetKey extracts the storage key from an asset URL. URLs pointing
// outside this server's store simply yield a key no upload row matches.
func assetKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	key := path.Base(u.Path)
	if key == "." || key == "/" {
		return ""
	}
	return key
}

type assembledLister struct {
	videos   VideoStore
	comments CommentStore
}

func (l *assembledLister) List(ctx context.Context) ([]*model.Video, error) {
	videos, err := l.videos.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	comments, err := l.comments.ListByVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	byVideo := make(map[string][]*model.Comment, len(videos))
	for _, c := range comments {
		byVideo[c.VideoID] = append(byVideo[c.VideoID], c)
	}
	for _, v := range videos {
		v.Comments = byVideo[v.ID]
		if v.Comments == nil {
			v.Comments = []*model.Comment{}
		}
	}
	return videos, nil
}
