package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymhub/internal/errors"
	"gymhub/internal/service"
)

// ProfileHandler serves the member profile page.
type ProfileHandler struct {
	memberService service.MemberService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(memberService service.MemberService) *ProfileHandler {
	return &ProfileHandler{memberService: memberService}
}

// ProfileResponse is the profile page payload.
type ProfileResponse struct {
	*service.ProfileOverview
	IsEnrolled bool `json:"is_enrolled"`
}

// Profile godoc
// @Summary Current member's enrollments and attendance history
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	memberID, err := CurrentMemberID(c)
	if err != nil {
		return err
	}

	overview, err := h.memberService.Overview(c.Request().Context(), memberID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ProfileOverview: overview,
		IsEnrolled:      IsEnrolled(c),
	})
}
