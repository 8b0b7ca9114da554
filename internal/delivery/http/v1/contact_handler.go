package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	devMode   bool
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, devMode bool) {
	handler := &ContactHandler{
		contactUC: contactUC,
		devMode:   devMode,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and send the notification email. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", nil, "")
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, "Email sent successfully")
}

// writeError maps workflow errors to status codes. Validation failures are
// caller faults and never logged; everything else is logged with full detail
// and sanitized on the way out.
func (h *ContactHandler) writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.Fail(c, http.StatusBadRequest, validationErr.Error(), validationErr.MissingFields, "")
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		logger.Log.Error("contact configuration error", "setting", configErr.Setting)
		response.Fail(c, http.StatusInternalServerError, "Email service is not configured", nil, "")
		return
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		logger.Log.Error("email transport verification failed", "error", transportErr.Err)
		response.Fail(c, http.StatusInternalServerError, "Email service configuration error", nil, h.detail(transportErr.Err))
		return
	}

	var sendErr *domain.SendError
	if errors.As(err, &sendErr) {
		logger.Log.Error("email send failed", "error", sendErr.Err)
		response.Fail(c, http.StatusInternalServerError, "Failed to send email", nil, h.detail(sendErr.Err))
		return
	}

	// Unexpected - let the error middleware produce the generic 500
	c.Error(err)
}

// detail exposes provider diagnostics only in development mode.
func (h *ContactHandler) detail(err error) string {
	if h.devMode {
		return err.Error()
	}
	return ""
}
