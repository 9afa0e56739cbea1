package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/service"
	"github.com/skycast/backend/pkg/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	weatherSvc   *service.WeatherService
	radarSvc     *service.RadarService
	authSvc      *service.AuthService
	favoritesSvc *service.FavoritesService
	tokenSvc     *service.TokenService
}

// NewHandler creates a new handler
func NewHandler(
	weatherSvc *service.WeatherService,
	radarSvc *service.RadarService,
	authSvc *service.AuthService,
	favoritesSvc *service.FavoritesService,
	tokenSvc *service.TokenService,
) *Handler {
	return &Handler{
		weatherSvc:   weatherSvc,
		radarSvc:     radarSvc,
		authSvc:      authSvc,
		favoritesSvc: favoritesSvc,
		tokenSvc:     tokenSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "skycast-backend",
		"version": "1.0.0",
	})
}

// GetWeather returns current conditions for a city
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if len(city) < 2 {
		return apperror.NewValidation("Query parameter 'city' is required")
	}

	report, err := h.weatherSvc.CurrentByCity(c.Context(), city)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// GetForecast returns the multi-day forecast for a city
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return apperror.NewValidation("Missing city")
	}

	report, err := h.weatherSvc.ForecastByCity(c.Context(), city)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// GetMapWeather returns current conditions for an arbitrary map point
func (h *Handler) GetMapWeather(c *fiber.Ctx) error {
	lat, latOK := utils.ParseFinite(c.Query("lat"))
	lon, lonOK := utils.ParseFinite(c.Query("lon"))
	if !latOK || !lonOK {
		return apperror.NewValidation("Missing or invalid lat/lon")
	}

	report, err := h.weatherSvc.CurrentAtPoint(c.Context(), lat, lon)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// GetMapRadar returns the latest precipitation radar tile template
func (h *Handler) GetMapRadar(c *fiber.Ctx) error {
	snapshot, err := h.radarSvc.Latest(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(snapshot)
}
