package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

type SuccessEnvelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse writes the standard success envelope. An optional total
// enables pagination metadata for list endpoints.
func SuccessResponse(ctx echo.Context, data interface{}, message string, code int, total ...uint64) error {
	env := &SuccessEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	}
	if len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		limit := filter.Limit
		totalPages := 0
		if limit > 0 {
			totalPages = int((total[0] + uint64(limit) - 1) / uint64(limit))
		}
		env.Pagination = &types.Pagination{
			TotalCount: total[0],
			Page:       filter.Page,
			Limit:      limit,
			TotalPages: totalPages,
		}
	}
	return ctx.JSON(code, env)
}

// ErrorResponse converts any error into the uniform error envelope. Driver
// detail goes into details for diagnostics; the top-level message stays
// non-sensitive.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusFor(err)
	env := &ErrorEnvelope{Error: err.Error()}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		env.Error = httpErr.Message
		if httpErr.Err != nil {
			env.Details = httpErr.Err.Error()
		}
	} else if code == http.StatusInternalServerError {
		env.Error = "internal server error"
		env.Details = err.Error()
	}

	if logger != nil {
		logger.Error("request failed",
			zap.Int("status", code),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}
	return ctx.JSON(code, env)
}
