package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/Hossam-elsheikh/lap-bonus/internal/service"
	"github.com/labstack/echo/v4"
)

type MemberHandler struct {
	svc service.MemberService
}

func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

type MemberResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Points float64 `json:"points"`
	TierID *uint64 `json:"tierId,omitempty"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
}

type TierResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PCR         float64 `json:"pcr"`
	RCR         float64 `json:"rcr"`
	MinPoints   float64 `json:"minPoints"`
}

type MemberDetailResponse struct {
	Member  MemberResponse      `json:"member"`
	Tier    *TierResponse       `json:"tier,omitempty"`
	Results []ResultRowResponse `json:"results"`
}

func toMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:     m.ID,
		Name:   m.Name,
		Phone:  m.Phone,
		Age:    m.Age,
		Points: m.Points,
		TierID: m.TierID,
	}
}

func toTierResponse(t *model.Tier) TierResponse {
	return TierResponse{
		ID:          t.ID,
		Title:       t.DisplayName(),
		Description: t.Description,
		PCR:         t.PCR,
		RCR:         t.RCR,
		MinPoints:   t.MinPoints,
	}
}

func (h *MemberHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit := 10
	members, total, err := h.svc.List(c.Request().Context(), limit, (page-1)*limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch members"))
	}
	resp := MemberListResponse{
		Members: make([]MemberResponse, 0, len(members)),
		Total:   total,
		Page:    page,
	}
	for i := range members {
		resp.Members = append(resp.Members, toMemberResponse(&members[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) Get(c echo.Context) error {
	detail, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "member not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch member"))
	}

	resp := MemberDetailResponse{
		Member:  toMemberResponse(&detail.Member),
		Results: make([]ResultRowResponse, 0, len(detail.Results)),
	}
	if detail.Tier != nil {
		t := toTierResponse(detail.Tier)
		resp.Tier = &t
	}
	for _, r := range detail.Results {
		resp.Results = append(resp.Results, ResultRowResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			TypeID:    r.TypeID,
			Cost:      r.Cost,
			FilePath:  r.FilePath,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
