package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/dbutil"
)

var commentFields = []string{"id", "video_id", "user_id", "author", "text", "likes", "ctime"}

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	data := map[string]interface{}{
		"id":       comment.ID,
		"video_id": comment.VideoID,
		"user_id":  comment.UserID,
		"author":   comment.Author,
		"text":     comment.Text,
		"likes":    comment.Likes,
		"ctime":    comment.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("comments", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *CommentRepo) ListByVideo(ctx context.Context, videoID string) ([]*model.Comment, error) {
	return r.list(ctx, map[string]interface{}{
		"video_id": videoID,
		"_orderby": "ctime asc",
	})
}

// ListByVideos fetches comments for a batch of videos in one query.
func (r *CommentRepo) ListByVideos(ctx context.Context, videoIDs []string) ([]*model.Comment, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	ids := make([]interface{}, 0, len(videoIDs))
	for _, id := range videoIDs {
		ids = append(ids, id)
	}
	return r.list(ctx, map[string]interface{}{
		"video_id in": ids,
		"_orderby":    "ctime asc",
	})
}

func (r *CommentRepo) list(ctx context.Context, where map[string]interface{}) ([]*model.Comment, error) {
	sqlStr, args, err := builder.BuildSelect("comments", where, commentFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() { _ = rows.Close() }()
	var comments []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Author, &c.Text, &c.Likes, &c.Ctime); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
