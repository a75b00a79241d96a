package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/huytran-le/vidlens/errors"
	dto "github.com/huytran-le/vidlens/internal/adapter/dto/analyze"
	"github.com/huytran-le/vidlens/internal/usecase/analysis"
)

// Analyze handles the content-analysis endpoint
type Analyze struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalyzeHandler creates the analyze handler
func NewAnalyzeHandler(svc analysis.Service, logger *zap.Logger) *Analyze {
	return &Analyze{svc: svc, logger: logger}
}

// Handle runs the analysis pipeline for one request. Responses hint
// keep-alive because analysis regularly takes tens of seconds and the
// browser retries on dropped connections.
func (h *Analyze) Handle(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")

	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	input := req.Input()
	if input == "" {
		return HandleError(h.logger, c, errors.ErrInvalidVideoID())
	}

	result, err := h.svc.Analyze(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("video_id", result.VideoID),
		)
	}
	return c.JSON(http.StatusOK, result)
}
