package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/service"
	"github.com/labstack/echo/v4"
)

type ResultHandler struct {
	svc service.ResultService
}

func NewResultHandler(svc service.ResultService) *ResultHandler {
	return &ResultHandler{svc: svc}
}

type IngestResponse struct {
	FactID       string  `json:"factId"`
	FilePath     string  `json:"filePath"`
	PointsAdded  float64 `json:"pointsAdded"`
	TierUpgraded bool    `json:"tierUpgraded"`
}

type ResultRowResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName,omitempty"`
	TypeID    string  `json:"typeId"`
	TypeTitle string  `json:"typeTitle,omitempty"`
	Cost      float64 `json:"cost"`
	FilePath  string  `json:"filePath"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type ResultListResponse struct {
	Results []ResultRowResponse `json:"results"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
}

// Create ingests one test-result document. Multipart form fields: user_id,
// type_id, cost, notes, created_at (RFC3339, optional) and the "file" part.
func (h *ResultHandler) Create(c echo.Context) error {
	cost, err := strconv.ParseFloat(c.FormValue("cost"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid cost"))
	}

	var createdAt time.Time
	if v := c.FormValue("created_at"); v != "" {
		createdAt, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid created_at"))
		}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing file"))
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable file"))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable file"))
	}

	out, err := h.svc.Ingest(c.Request().Context(), currentRole(c), service.IngestInput{
		MemberID:  c.FormValue("user_id"),
		TypeID:    c.FormValue("type_id"),
		Cost:      cost,
		Notes:     c.FormValue("notes"),
		CreatedAt: createdAt,
		Document:  data,
		MediaType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return writeIngestError(c, err)
	}
	return c.JSON(http.StatusCreated, IngestResponse{
		FactID:       out.FactID,
		FilePath:     out.FilePath,
		PointsAdded:  out.PointsAdded,
		TierUpgraded: out.TierUpgraded,
	})
}

func writeIngestError(c echo.Context, err error) error {
	var invalid *service.InvalidInputError
	var book *service.BookkeepingError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "admin role required"))
	case errors.Is(err, service.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "member not found"))
	case errors.Is(err, service.ErrTestTypeNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "test type not found"))
	case errors.Is(err, service.ErrUploadConflict):
		return c.JSON(http.StatusConflict, NewErrorResponse("upload_conflict", err.Error()))
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", invalid.Error()))
	case errors.As(err, &book):
		return c.JSON(http.StatusBadGateway, NewErrorResponse("bookkeeping_failed", "result was not recorded"))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to ingest result"))
	}
}

func (h *ResultHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit := 10

	opts := service.ResultListOptions{
		UserID:   c.QueryParam("user_id"),
		TypeName: c.QueryParam("test_name"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if v := c.QueryParam("date"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid date"))
		}
		opts.Day = &day
	}

	rows, total, err := h.svc.List(c.Request().Context(), opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch results"))
	}

	resp := ResultListResponse{
		Results: make([]ResultRowResponse, 0, len(rows)),
		Total:   total,
		Page:    page,
	}
	for _, row := range rows {
		resp.Results = append(resp.Results, ResultRowResponse{
			ID:        row.Result.ID,
			UserID:    row.Result.UserID,
			UserName:  row.UserName,
			TypeID:    row.Result.TypeID,
			TypeTitle: row.TypeTitle,
			Cost:      row.Result.Cost,
			FilePath:  row.Result.FilePath,
			Notes:     row.Result.Notes,
			CreatedAt: row.Result.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
