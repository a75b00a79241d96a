package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/huytran-le/vidlens/internal/adapter/dto/analyze"
	"github.com/huytran-le/vidlens/internal/usecase/counter"
)

// Counter handles the visitor-counter endpoints
type Counter struct {
	svc    counter.Service
	logger *zap.Logger
}

// NewCounterHandler creates the counter handler
func NewCounterHandler(svc counter.Service, logger *zap.Logger) *Counter {
	return &Counter{svc: svc, logger: logger}
}

// Init returns the current count, creating it at zero if absent
func (h *Counter) Init(c echo.Context) error {
	n, err := h.svc.Init(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// Increment adds one to the count
func (h *Counter) Increment(c echo.Context) error {
	n, err := h.svc.Increment(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// Decrement subtracts one from the count, never going below zero
func (h *Counter) Decrement(c echo.Context) error {
	n, err := h.svc.Decrement(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}
