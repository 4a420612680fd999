package applicants

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"intern-portal/internal/shared/server/respond"
	"intern-portal/internal/shared/validation"
)

const maxBodySize = 64 << 10

const duplicateEmailMessage = "An applicant with this email already exists."

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches applicant routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.GET("/applicants", h.list)
}

func (h *Handler) register(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		respond.ValidationFailed(c, InvalidBody())
		return
	}

	applicant, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			respond.ValidationFailed(c, verrs)
		case errors.Is(err, ErrDuplicateEmail):
			respond.Message(c, http.StatusBadRequest, duplicateEmailMessage)
		default:
			respond.ServerError(c, "Server error during registration.")
		}
		return
	}

	c.Set("applicantId", applicant.ID)
	respond.Created(c, registerResponse{
		Message:   "Registration successful!",
		Applicant: applicant,
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		respond.ServerError(c, "Server error fetching applicants.")
		return
	}
	respond.OK(c, list)
}

// InvalidBody is the error list returned when a body cannot be decoded.
func InvalidBody() validation.Errors {
	return validation.Errors{{Path: "body", Msg: "Request body must be a valid JSON object", Location: "body"}}
}
