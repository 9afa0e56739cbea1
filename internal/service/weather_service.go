package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// WeatherService handles geocoding and weather data fetching from Open-Meteo
type WeatherService struct {
	geocodingBaseURL string
	forecastBaseURL  string
	httpClient       *http.Client
}

// NewWeatherService creates a new weather service
func NewWeatherService(geocodingBaseURL, forecastBaseURL string) *WeatherService {
	return &WeatherService{
		geocodingBaseURL: geocodingBaseURL,
		forecastBaseURL:  forecastBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// geocodeResponse represents the Open-Meteo geocoding API response
type geocodeResponse struct {
	Results []struct {
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Country   string   `json:"country"`
		Admin1    *string  `json:"admin1"`
	} `json:"results"`
}

// Geocode resolves a free-text city name to its best coordinate match.
// It requests a single result; zero matches is NotFound, everything else
// that goes wrong is an upstream failure.
func (s *WeatherService) Geocode(ctx context.Context, city string) (domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/v1/search?%s", s.geocodingBaseURL, params.Encode())

	body, status, err := s.get(ctx, endpoint)
	if err != nil {
		appErr := apperror.NewUpstream("Geocoding service error", 0, "")
		appErr.Internal = err
		return domain.GeocodeResult{}, appErr
	}
	if status != http.StatusOK {
		return domain.GeocodeResult{}, apperror.NewUpstream("Geocoding service error", status, string(body))
	}

	var geo geocodeResponse
	if err := json.Unmarshal(body, &geo); err != nil {
		appErr := apperror.NewUpstream("Geocoding service error", status, string(body))
		appErr.Internal = fmt.Errorf("weather: failed to decode geocoding response: %w", err)
		return domain.GeocodeResult{}, appErr
	}

	if len(geo.Results) == 0 {
		return domain.GeocodeResult{}, apperror.NewNotFound("City not found")
	}

	place := geo.Results[0]
	if place.Latitude == nil || place.Longitude == nil {
		return domain.GeocodeResult{}, apperror.NewUpstream("Invalid geocoding result", status, string(body))
	}

	return domain.GeocodeResult{
		Name:      place.Name,
		Country:   place.Country,
		Region:    place.Admin1,
		Latitude:  *place.Latitude,
		Longitude: *place.Longitude,
	}, nil
}

// CurrentByCity resolves the city and fetches its current conditions.
func (s *WeatherService) CurrentByCity(ctx context.Context, city string) (domain.WeatherReport, error) {
	place, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.WeatherReport{}, err
	}

	params := url.Values{}
	params.Set("latitude", formatCoord(place.Latitude))
	params.Set("longitude", formatCoord(place.Longitude))
	params.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m")
	params.Set("timezone", "auto")

	payload, err := s.fetchForecast(ctx, params, "External weather service error")
	if err != nil {
		return domain.WeatherReport{}, err
	}

	return domain.WeatherReport{
		City:      place.Name,
		Country:   place.Country,
		Region:    place.Region,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Current:   normalizeCurrent(payload),
	}, nil
}

// ForecastByCity resolves the city and fetches its multi-day forecast.
func (s *WeatherService) ForecastByCity(ctx context.Context, city string) (domain.ForecastReport, error) {
	place, err := s.Geocode(ctx, city)
	if err != nil {
		return domain.ForecastReport{}, err
	}

	params := url.Values{}
	params.Set("latitude", formatCoord(place.Latitude))
	params.Set("longitude", formatCoord(place.Longitude))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max")
	params.Set("timezone", "UTC")

	payload, err := s.fetchForecast(ctx, params, "Upstream forecast API error")
	if err != nil {
		return domain.ForecastReport{}, err
	}

	days, ok := normalizeDaily(payload)
	if !ok {
		raw, _ := json.Marshal(payload)
		return domain.ForecastReport{}, apperror.NewUpstream("Upstream forecast API error", http.StatusOK, string(raw))
	}

	var country *string
	if place.Country != "" {
		country = &place.Country
	}

	return domain.ForecastReport{
		City:      place.Name,
		Country:   country,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Days:      days,
	}, nil
}

// CurrentAtPoint fetches current conditions for an arbitrary coordinate pair.
// The caller's coordinates are echoed back unmodified.
func (s *WeatherService) CurrentAtPoint(ctx context.Context, lat, lon float64) (domain.MapReport, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "temperature_2m,precipitation,wind_speed_10m,wind_direction_10m")
	params.Set("temperature_unit", "celsius")
	params.Set("wind_speed_unit", "kmh")
	params.Set("precipitation_unit", "mm")
	params.Set("timezone", "UTC")

	payload, err := s.fetchForecast(ctx, params, "Upstream weather API error")
	if err != nil {
		return domain.MapReport{}, err
	}

	return domain.MapReport{
		Latitude:  lat,
		Longitude: lon,
		Current:   normalizeMapCurrent(payload),
	}, nil
}

// fetchForecast issues a single call to the Open-Meteo forecast endpoint and
// decodes the body into a generic payload for the normalizer. No retries.
func (s *WeatherService) fetchForecast(ctx context.Context, params url.Values, errMsg string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/v1/forecast?%s", s.forecastBaseURL, params.Encode())

	body, status, err := s.get(ctx, endpoint)
	if err != nil {
		appErr := apperror.NewUpstream(errMsg, 0, "")
		appErr.Internal = err
		return nil, appErr
	}
	if status != http.StatusOK {
		return nil, apperror.NewUpstream(errMsg, status, string(body))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		appErr := apperror.NewUpstream(errMsg, status, string(body))
		appErr.Internal = fmt.Errorf("weather: failed to decode forecast response: %w", err)
		return nil, appErr
	}

	return payload, nil
}

// get performs one GET request and reads the full body.
func (s *WeatherService) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("weather: failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%g", v)
}
