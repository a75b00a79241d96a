package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/huytran-le/vidlens/errors"
	"github.com/huytran-le/vidlens/internal/adapter/dto/analyze"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleError translates an error into the {error, message} wire shape.
// AppErrors keep their code and message; anything else becomes a generic
// 500 so internal detail never leaks to clients.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, analyze.ErrorResponse{
			Error:   appErr.Code.String(),
			Message: appErr.Message,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, analyze.ErrorResponse{
		Error:   errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
	})
}
