package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubUpstream serves canned geocoding and forecast bodies on the Open-Meteo
// paths so one server can stand in for both providers.
func stubUpstream(t *testing.T, geocodeBody, forecastBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			w.Write([]byte(geocodeBody))
		case "/v1/forecast":
			w.Write([]byte(forecastBody))
		default:
			http.NotFound(w, r)
		}
	}))
}

const warsawGeocode = `{
	"results": [{
		"name": "Warsaw",
		"latitude": 52.23,
		"longitude": 21.01,
		"country": "Poland",
		"admin1": "Masovian"
	}]
}`

// TestGeocodeNoMatches verifies that zero geocoding matches is NotFound,
// distinct from a provider failure.
func TestGeocodeNoMatches(t *testing.T) {
	srv := stubUpstream(t, `{"results": []}`, `{}`)
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL)
	_, err := svc.Geocode(context.Background(), "Nowheresville")
	if code := appErrorCode(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

// TestGeocodeUpstreamFailure verifies that provider errors and malformed
// bodies are classified as upstream failures, not NotFound.
func TestGeocodeUpstreamFailure(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>oops</html>"))
			},
		},
		{
			name: "result without coordinates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"results": [{"name": "Warsaw", "country": "Poland"}]}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			svc := NewWeatherService(srv.URL, srv.URL)
			_, err := svc.Geocode(context.Background(), "Warsaw")
			if code := appErrorCode(t, err); code != http.StatusBadGateway {
				t.Fatalf("expected 502, got %d", code)
			}
		})
	}
}

// TestCurrentByCity walks the full geocode-then-fetch composition.
func TestCurrentByCity(t *testing.T) {
	srv := stubUpstream(t, warsawGeocode, `{
		"current": {
			"temperature_2m": 17.3,
			"relative_humidity_2m": 64,
			"wind_speed_10m": 11.2,
			"time": "2026-09-01T10:00"
		}
	}`)
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL)
	report, err := svc.CurrentByCity(context.Background(), "Warsaw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.City != "Warsaw" || report.Country != "Poland" {
		t.Fatalf("unexpected place: %+v", report)
	}
	if report.Region == nil || *report.Region != "Masovian" {
		t.Fatalf("expected region Masovian, got %v", report.Region)
	}
	if report.Latitude != 52.23 || report.Longitude != 21.01 {
		t.Fatalf("unexpected coordinates: %+v", report)
	}
	if report.Current.Temperature == nil || *report.Current.Temperature != 17.3 {
		t.Fatalf("expected temperature 17.3, got %v", report.Current.Temperature)
	}
	if report.Current.Humidity == nil || *report.Current.Humidity != 64 {
		t.Fatalf("expected humidity 64, got %v", report.Current.Humidity)
	}
}

// TestForecastByCityMissingDailyShape verifies that a success body without
// the daily date array hard-fails as an upstream error.
func TestForecastByCityMissingDailyShape(t *testing.T) {
	srv := stubUpstream(t, warsawGeocode, `{"hourly": {}}`)
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL)
	_, err := svc.ForecastByCity(context.Background(), "Warsaw")
	if code := appErrorCode(t, err); code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
}

// TestCurrentAtPointEchoesCoordinates verifies the exact input coordinates
// come back unmodified regardless of what the provider reports.
func TestCurrentAtPointEchoesCoordinates(t *testing.T) {
	srv := stubUpstream(t, `{}`, `{
		"latitude": 52.25,
		"longitude": 21.0,
		"current": {"temperature_2m": 19.1, "time": "2026-09-01T10:00"}
	}`)
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL)
	report, err := svc.CurrentAtPoint(context.Background(), 52.2297, 21.0122)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Latitude != 52.2297 || report.Longitude != 21.0122 {
		t.Fatalf("expected input coordinates echoed back, got %+v", report)
	}
	if report.Current.Temperature == nil || *report.Current.Temperature != 19.1 {
		t.Fatalf("expected temperature 19.1, got %v", report.Current.Temperature)
	}
	if report.Current.Precipitation != nil {
		t.Fatalf("expected nil precipitation for missing value, got %v", *report.Current.Precipitation)
	}
}

// TestCurrentAtPointUpstreamStatus verifies non-success provider statuses
// surface as upstream failures.
func TestCurrentAtPointUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"reason": "rate limited"}`))
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL)
	_, err := svc.CurrentAtPoint(context.Background(), 1, 2)
	if code := appErrorCode(t, err); code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
}
