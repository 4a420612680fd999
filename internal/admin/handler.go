package admin

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"intern-portal/internal/shared/server/respond"
	"intern-portal/internal/shared/validation"
)

const maxBodySize = 16 << 10

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Handler exposes the admin login endpoint.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)
}

func (h *Handler) login(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		respond.JSON(c, http.StatusBadRequest, loginResponse{
			Errors: validation.Errors{{Path: "body", Msg: "Request body must be a valid JSON object", Location: "body"}},
		})
		return
	}

	err := h.Svc.CheckCredentials(c.Request.Context(), in)
	var verrs validation.Errors
	switch {
	case err == nil:
		respond.OK(c, loginResponse{Success: true, Message: "Login successful!"})
	case errors.As(err, &verrs):
		respond.JSON(c, http.StatusBadRequest, loginResponse{Errors: verrs})
	case errors.Is(err, ErrInvalidCredentials):
		respond.JSON(c, http.StatusUnauthorized, loginResponse{Message: "Invalid username or password."})
	default:
		respond.ServerError(c, "Server error during login.")
	}
}
