package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/service"
)

// AttendanceHandler handles daily check-in endpoints.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
	catalogService    service.CatalogService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService service.AttendanceService, catalogService service.CatalogService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		catalogService:    catalogService,
	}
}

// CheckInRequest represents an attendance form submission.
type CheckInRequest struct {
	StartingTime string `json:"starting_time" validate:"required"`
	EndingTime   string `json:"ending_time" validate:"required"`
	WorkoutType  string `json:"workout_type" validate:"required"`
	Trainer      string `json:"trainer"`
}

// CheckInOptionsResponse lists the selectable trainers for the form.
type CheckInOptionsResponse struct {
	Trainers   []model.Trainer `json:"trainers"`
	IsEnrolled bool            `json:"is_enrolled"`
}

// CheckInResponse represents a recorded check-in.
type CheckInResponse struct {
	Message    string            `json:"message"`
	Attendance *model.Attendance `json:"attendance"`
}

// Options godoc
// @Summary Attendance form options
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CheckInOptionsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance [get]
func (h *AttendanceHandler) Options(c echo.Context) error {
	trainers, err := h.catalogService.Trainers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CheckInOptionsResponse{
		Trainers:   trainers,
		IsEnrolled: IsEnrolled(c),
	})
}

// CheckIn godoc
// @Summary Record today's attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckInRequest true "Attendance data"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	memberID, err := CurrentMemberID(c)
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendance, err := h.attendanceService.CheckIn(c.Request().Context(), memberID, service.CheckInInput{
		StartingTime: req.StartingTime,
		EndingTime:   req.EndingTime,
		WorkoutType:  req.WorkoutType,
		Trainer:      req.Trainer,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CheckInResponse{
		Message:    "Attendance recorded successfully.",
		Attendance: attendance,
	})
}
