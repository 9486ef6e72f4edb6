package api

import (
	"net/http"

	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortInfra answers infrastructure failures: 503 for anything a client may
// retry, 500 for the rest.
func abortInfra(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrLockTimeout), errs.Is(err, errs.ErrLockBusy):
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Server busy, retry later", nil)
	case errs.Is(err, errs.ErrTransientStore):
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
