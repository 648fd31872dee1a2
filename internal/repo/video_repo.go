package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/dbutil"
	appErr "github.com/bensedjadrafik-ux/vitube-app/internal/pkg/errors"
)

var videoFields = []string{"id", "title", "description", "video_url", "thumbnail_url", "channel", "views", "likes", "dislikes", "ctime", "mtime"}

type VideoRepo struct {
	db *sql.DB
}

func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	data := map[string]interface{}{
		"id":            video.ID,
		"title":         video.Title,
		"description":   video.Description,
		"video_url":     video.VideoURL,
		"thumbnail_url": video.ThumbnailURL,
		"channel":       video.Channel,
		"views":         video.Views,
		"likes":         video.Likes,
		"dislikes":      video.Dislikes,
		"ctime":         video.Ctime,
		"mtime":         video.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("videos", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

// List returns all videos, newest first.
func (r *VideoRepo) List(ctx context.Context) ([]*model.Video, error) {
	where := map[string]interface{}{"_orderby": "ctime desc"}
	sqlStr, args, err := builder.BuildSelect("videos", where, videoFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() { _ = rows.Close() }()
	var videos []*model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL, &v.Channel, &v.Views, &v.Likes, &v.Dislikes, &v.Ctime, &v.Mtime); err != nil {
			return nil, err
		}
		videos = append(videos, &v)
	}
	return videos, rows.Err()
}

func (r *VideoRepo) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	where := map[string]interface{}{"id": videoID}
	sqlStr, args, err := builder.BuildSelect("videos", where, videoFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var v model.Video
	if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL, &v.Channel, &v.Views, &v.Likes, &v.Dislikes, &v.Ctime, &v.Mtime); err != nil {
		return nil, err
	}
	return &v, nil
}

// IncrementViews bumps the counter atomically in the database and
// returns the new value, so concurrent viewers never lose updates.
func (r *VideoRepo) IncrementViews(ctx context.Context, videoID string, mtime int64) (int64, error) {
	const query = `UPDATE videos SET views = views + 1, mtime = $2 WHERE id = $1 RETURNING views`
	var views int64
	if err := r.db.QueryRowContext(ctx, query, videoID, mtime).Scan(&views); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErr.ErrNotFound
		}
		return 0, mapErr(err)
	}
	return views, nil
}
