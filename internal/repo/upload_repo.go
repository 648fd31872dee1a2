package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/dbutil"
)

type UploadRepo struct {
	db *sql.DB
}

func NewUploadRepo(db *sql.DB) *UploadRepo {
	return &UploadRepo{db: db}
}

func (r *UploadRepo) Create(ctx context.Context, upload *model.Upload) error {
	data := map[string]interface{}{
		"key":      upload.Key,
		"user_id":  upload.UserID,
		"attached": boolToInt(upload.Attached),
		"ctime":    upload.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("uploads", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

// MarkAttached flags an upload as referenced by a video. Unknown keys
// are ignored: videos may also point at URLs that were never uploaded
// through this server.
func (r *UploadRepo) MarkAttached(ctx context.Context, key string) error {
	where := map[string]interface{}{"key": key}
	update := map[string]interface{}{"attached": 1}
	sqlStr, args, err := builder.BuildUpdate("uploads", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

// ListStaleUnattached returns uploads created before cutoff that no
// video ever claimed.
func (r *UploadRepo) ListStaleUnattached(ctx context.Context, cutoff int64) ([]*model.Upload, error) {
	where := map[string]interface{}{
		"attached": 0,
		"ctime <":  cutoff,
	}
	sqlStr, args, err := builder.BuildSelect("uploads", where, []string{"key", "user_id", "attached", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() { _ = rows.Close() }()
	var uploads []*model.Upload
	for rows.Next() {
		var u model.Upload
		var attached int
		if err := rows.Scan(&u.Key, &u.UserID, &attached, &u.Ctime); err != nil {
			return nil, err
		}
		u.Attached = attached != 0
		uploads = append(uploads, &u)
	}
	return uploads, rows.Err()
}

func (r *UploadRepo) Delete(ctx context.Context, key string) error {
	where := map[string]interface{}{"key": key}
	sqlStr, args, err := builder.BuildDelete("uploads", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
