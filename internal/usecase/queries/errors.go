package queries

import (
	"seckill-guard/internal/infra"
	"seckill-guard/internal/pkg/errs"
)

// sourceErr maps read store failures onto the shared sentinels the cache layer
// and the handlers understand.
func sourceErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrTransientStore)
	default:
		return err
	}
}
