package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/service"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
	catalogService    service.CatalogService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService, catalogService service.CatalogService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		catalogService:    catalogService,
	}
}

// EnrollRequest represents an enrollment form submission. Plan and trainer
// are free text; any submitted value is accepted.
type EnrollRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"` // YYYY-MM-DD, optional
	Address        string `json:"address"`
	MembershipPlan string `json:"membership_plan"`
	Trainer        string `json:"trainer"`
}

// EnrollOptionsResponse lists the selectable plans and trainers.
type EnrollOptionsResponse struct {
	Membership []model.MembershipPlan `json:"membership"`
	Trainers   []model.Trainer        `json:"trainers"`
	IsEnrolled bool                   `json:"is_enrolled"`
}

// EnrollResponse represents a created enrollment.
type EnrollResponse struct {
	Message    string            `json:"message"`
	Enrollment *model.Enrollment `json:"enrollment"`
}

// Options godoc
// @Summary Enrollment form options
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EnrollOptionsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /enroll [get]
func (h *EnrollmentHandler) Options(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.catalogService.Plans(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	trainers, err := h.catalogService.Trainers(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, EnrollOptionsResponse{
		Membership: plans,
		Trainers:   trainers,
		IsEnrolled: IsEnrolled(c),
	})
}

// Enroll godoc
// @Summary Enroll the current member
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Enrollment data"
// @Success 201 {object} EnrollResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	memberID, err := CurrentMemberID(c)
	if err != nil {
		return err
	}

	var req EnrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.EnrollmentInput{
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		Address:        req.Address,
		MembershipPlan: req.MembershipPlan,
		Trainer:        req.Trainer,
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid dob, expected YYYY-MM-DD",
				Code:  "INVALID_DOB",
			})
		}
		input.DOB = &dob
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request().Context(), memberID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, EnrollResponse{
		Message:    "Thanks for enrollment",
		Enrollment: enrollment,
	})
}
