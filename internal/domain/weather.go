package domain

// GeocodeResult is the single best geocoding match for a free-text city query.
// Request-scoped; never persisted.
type GeocodeResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    *string `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions holds normalized current weather for a city. Numeric
// fields are pointers so missing or malformed upstream values render as
// JSON null instead of a zero.
type CurrentConditions struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windSpeed"`
	Time        *string  `json:"time"`
}

// WeatherReport is the response body for the current-weather endpoint.
type WeatherReport struct {
	City      string            `json:"city"`
	Country   string            `json:"country"`
	Region    *string           `json:"region"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Current   CurrentConditions `json:"current"`
}

// ForecastDay is one normalized day of the multi-day forecast.
type ForecastDay struct {
	Date             string   `json:"date"`
	TempMax          *float64 `json:"tempMax"`
	TempMin          *float64 `json:"tempMin"`
	PrecipitationSum *float64 `json:"precipitationSum"`
	WindSpeedMax     *float64 `json:"windSpeedMax"`
}

// ForecastReport is the response body for the forecast endpoint.
type ForecastReport struct {
	City      string        `json:"city"`
	Country   *string       `json:"country"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Days      []ForecastDay `json:"days"`
}

// MapConditions holds normalized current weather for an arbitrary map point.
type MapConditions struct {
	Temperature   *float64 `json:"temperature"`
	Precipitation *float64 `json:"precipitation"`
	WindSpeed     *float64 `json:"windSpeed"`
	WindDirection *float64 `json:"windDirection"`
	Time          *string  `json:"time"`
}

// MapReport echoes the requested coordinates back alongside the conditions.
type MapReport struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Current   MapConditions `json:"current"`
}

// RadarSnapshot describes the most recent precipitation radar frame as a
// slippy-map tile URL template. Regenerated on every request; never cached.
type RadarSnapshot struct {
	TileURLTemplate string  `json:"tileUrlTemplate"`
	Generated       float64 `json:"generated"`
	MaxZoom         int     `json:"maxZoom"`
}
