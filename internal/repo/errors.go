package repo

import (
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/dbutil"
	appErr "github.com/bensedjadrafik-ux/vitube-app/internal/pkg/errors"
)

// mapErr folds connectivity failures into the store-unavailable
// sentinel; statement-level errors pass through for the caller to
// classify.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if dbutil.IsUnavailable(err) {
		return appErr.ErrStoreUnavailable
	}
	return err
}
