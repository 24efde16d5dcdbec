package handler

import (
	"net/http"

	"github.com/Hossam-elsheikh/lap-bonus/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Dashboard(c.Request().Context()))
}
