package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api")
	{
		// Account endpoints
		api.Post("/auth/register", handler.Register)
		api.Post("/auth/login", handler.Login)

		// Weather endpoints
		api.Get("/weather", handler.GetWeather)
		api.Get("/forecast", handler.GetForecast)
		api.Get("/map/weather", handler.GetMapWeather)
		api.Get("/map/radar", handler.GetMapRadar)

		// Favorites endpoints (session required)
		favorites := api.Group("/favorites", handler.RequireAuth)
		favorites.Get("/", handler.ListFavorites)
		favorites.Post("/", handler.AddFavorite)
		favorites.Delete("/:city", handler.RemoveFavorite)
	}
}
