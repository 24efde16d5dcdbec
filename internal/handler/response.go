package handler

import (
	"github.com/Hossam-elsheikh/lap-bonus/internal/authctx"
	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

func currentRole(c echo.Context) model.Role {
	if r, ok := c.Get("role").(model.Role); ok {
		return r
	}
	return authctx.Role(c.Request().Context())
}
