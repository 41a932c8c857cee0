// Package controller holds helpers shared by the HTTP handlers.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes err as a dto.ErrorResponse. Causes are logged, never
// sent to the client.
func RespondError(ctx *gin.Context, op string, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Error().Err(err).Str("op", op).Str("path", ctx.FullPath()).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	status := appErr.Status()
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("op", op).Str("code", string(appErr.Kind)).Int("status", status).Msg("Request failed")

	ctx.JSON(status, dto.ErrorResponse{Error: appErr.Message, Code: string(appErr.Kind)})
}

// BadRequest reports a request that failed binding.
func BadRequest(ctx *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{Error: message, Code: string(apperror.KindValidation)}
	if err != nil {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// UintParam reads a numeric path parameter, answering 400 when malformed.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		BadRequest(ctx, "Invalid "+name+" format", nil)
		return 0, false
	}
	return uint(v), true
}
