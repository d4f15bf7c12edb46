package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karmachari/portal/internal/app/models/dto"
	"github.com/karmachari/portal/internal/pkg/logger"
)

// bindRequest binds a JSON or multipart body into req and writes a 400 on failure
func bindRequest(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBind(req); err != nil {
		logger.Warn().Err(err).
			Str("path", ctx.FullPath()).
			Msg("Rejected request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid ID").
			WithDetails(map[string]string{name: "Must be a positive integer"})
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
