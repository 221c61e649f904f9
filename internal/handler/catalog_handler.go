package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/service"
)

// CatalogHandler serves the public pages: home, about, fees, trainers.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// HomeResponse is the home page payload.
type HomeResponse struct {
	Fees         []model.MembershipPlan `json:"fees"`
	Testimonials []model.Testimonial    `json:"testimonials"`
	IsEnrolled   bool                   `json:"is_enrolled"`
}

// FeesResponse is the membership fees page payload.
type FeesResponse struct {
	Fees       []model.MembershipPlan `json:"fees"`
	IsEnrolled bool                   `json:"is_enrolled"`
}

// TrainersResponse is the trainers page payload.
type TrainersResponse struct {
	Trainers   []model.Trainer `json:"trainers"`
	IsEnrolled bool            `json:"is_enrolled"`
}

// AboutResponse is the about page payload.
type AboutResponse struct {
	Name       string `json:"name"`
	About      string `json:"about"`
	IsEnrolled bool   `json:"is_enrolled"`
}

// Home godoc
// @Summary Home page with membership fees and testimonials
// @Tags pages
// @Produce json
// @Success 200 {object} HomeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /home [get]
func (h *CatalogHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	fees, err := h.catalogService.Plans(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	testimonials, err := h.catalogService.Testimonials(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, HomeResponse{
		Fees:         fees,
		Testimonials: testimonials,
		IsEnrolled:   IsEnrolled(c),
	})
}

// About godoc
// @Summary About page
// @Tags pages
// @Produce json
// @Success 200 {object} AboutResponse
// @Router /about [get]
func (h *CatalogHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, AboutResponse{
		Name:       "GymHub",
		About:      "A gym for everyone: browse plans, meet our trainers, enroll, and track your daily attendance.",
		IsEnrolled: IsEnrolled(c),
	})
}

// Fees godoc
// @Summary Membership fees page
// @Tags pages
// @Produce json
// @Success 200 {object} FeesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fees [get]
func (h *CatalogHandler) Fees(c echo.Context) error {
	fees, err := h.catalogService.Plans(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FeesResponse{
		Fees:       fees,
		IsEnrolled: IsEnrolled(c),
	})
}

// Trainers godoc
// @Summary Trainers page, newest first
// @Tags pages
// @Produce json
// @Success 200 {object} TrainersResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainers [get]
func (h *CatalogHandler) Trainers(c echo.Context) error {
	trainers, err := h.catalogService.Trainers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TrainersResponse{
		Trainers:   trainers,
		IsEnrolled: IsEnrolled(c),
	})
}
