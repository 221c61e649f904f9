package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymhub/internal/errors"
	"gymhub/internal/service"
)

// ContactHandler handles contact form endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission. Only the message body
// gates the submission: the service rejects an empty message, while name and
// email are stored as sent.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse represents a contact confirmation.
type ContactResponse struct {
	Message    string `json:"message"`
	IsEnrolled bool   `json:"is_enrolled"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ContactResponse{
		Message:    "Your message has been sent!",
		IsEnrolled: IsEnrolled(c),
	})
}

// ListMessages godoc
// @Summary List contact messages, newest first
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/messages [get]
func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.contactService.ListMessages(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}
