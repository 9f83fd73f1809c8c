package api

import (
	"net/http"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/handler/httperr"
	"parking-occupancy/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// kindStatus is checked in order; storage first so a marked DB error never
// reports as a domain failure.
var kindStatus = []struct {
	kind   error
	status int
}{
	{errs.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrInvalidInterval, http.StatusUnprocessableEntity},
	{errs.ErrInvalidState, http.StatusBadRequest},
	{errs.ErrValidation, http.StatusBadRequest},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, operator.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		return
	case errs.Is(err, operator.ErrOperatorInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		return
	}

	for _, ks := range kindStatus {
		if !errs.Is(err, ks.kind) {
			continue
		}
		msg := errs.Message(err)
		if msg == "" || ks.status == http.StatusServiceUnavailable {
			msg = http.StatusText(ks.status)
		}
		httperr.AbortWithError(c, ks.status, err, msg, nil)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
