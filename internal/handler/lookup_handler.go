package handler

import (
	"net/http"

	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
	"github.com/labstack/echo/v4"
)

// LookupHandler serves the small reference lists the admin forms need.
type LookupHandler struct {
	types repository.TestTypeRepository
	tiers repository.TierRepository
}

func NewLookupHandler(types repository.TestTypeRepository, tiers repository.TierRepository) *LookupHandler {
	return &LookupHandler{types: types, tiers: tiers}
}

type TestTypeResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (h *LookupHandler) TestTypes(c echo.Context) error {
	types, err := h.types.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch test types"))
	}
	resp := make([]TestTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, TestTypeResponse{ID: t.ID, Title: t.DisplayName()})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) Tiers(c echo.Context) error {
	tiers, err := h.tiers.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch tiers"))
	}
	resp := make([]TierResponse, 0, len(tiers))
	for i := range tiers {
		resp = append(resp, toTierResponse(&tiers[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
