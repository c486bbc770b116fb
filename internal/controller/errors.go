package controller

import (
	"errors"
	"net/http"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Anything unknown is
// logged and reported as 500.
func respondError(ctx *gin.Context, err error) {
	var invalid *compass.InvalidValueError
	switch {
	case errors.As(err, &invalid):
		util.BadRequest(ctx, invalid.Error())
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrInvalidSession):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrTestNotStarted),
		errors.Is(err, util.ErrNoResult),
		errors.Is(err, util.ErrArchetypeNotFound):
		util.NotFoundMessage(ctx, err.Error())
	case errors.Is(err, util.ErrTestIncomplete),
		errors.Is(err, util.ErrQuestionNotInTest),
		errors.Is(err, util.ErrInvalidNavigation),
		errors.Is(err, util.ErrInvalidResult),
		errors.Is(err, util.ErrInvalidWalletAddress):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrTestAlreadyCompleted), errors.Is(err, util.ErrAlreadyMinted):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrMintingDisabled):
		util.ServiceUnavailable(ctx, err.Error())
	case errors.Is(err, util.ErrMintFailed):
		util.Error(ctx, http.StatusBadGateway, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// sessionID aborts with 401 when the request carries no session.
func sessionID(ctx *gin.Context) (string, bool) {
	id, err := util.SessionID(ctx)
	if err != nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return id, true
}
