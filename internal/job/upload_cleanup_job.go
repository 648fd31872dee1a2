package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/bensedjadrafik-ux/vitube-app/internal/filestore"
	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
)

// UploadLister is the slice of the upload repo this job needs.
type UploadLister interface {
	ListStaleUnattached(ctx context.Context, cutoff int64) ([]*model.Upload, error)
	Delete(ctx context.Context, key string) error
}

// UploadCleanupJob reaps uploaded assets that were never attached to a
// video. The file is removed first when the store supports deletion;
// the bookkeeping row goes last so a failed file delete is retried on
// the next run.
type UploadCleanupJob struct {
	uploads UploadLister
	store   filestore.Store
	maxAge  time.Duration
}

func NewUploadCleanupJob(uploads UploadLister, store filestore.Store, maxAge time.Duration) *UploadCleanupJob {
	return &UploadCleanupJob{uploads: uploads, store: store, maxAge: maxAge}
}

func (j *UploadCleanupJob) Name() string {
	return "upload_cleanup"
}

func (j *UploadCleanupJob) Run(ctx context.Context) error {
	maxAge := j.maxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	cutoff := time.Now().Add(-maxAge).Unix()
	stale, err := j.uploads.ListStaleUnattached(ctx, cutoff)
	if err != nil {
		return err
	}
	deleter, _ := j.store.(filestore.Deleter)
	for _, upload := range stale {
		if deleter != nil {
			if err := deleter.Delete(ctx, upload.Key); err != nil {
				logutil.GetLogger(ctx).Warn("delete stale upload file failed", zap.String("key", upload.Key), zap.Error(err))
				continue
			}
		}
		if err := j.uploads.Delete(ctx, upload.Key); err != nil {
			return err
		}
		logutil.GetLogger(ctx).Info("stale upload reaped", zap.String("key", upload.Key))
	}
	return nil
}
