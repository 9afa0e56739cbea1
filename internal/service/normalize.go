package service

import (
	"github.com/skycast/backend/internal/domain"
	"github.com/skycast/backend/pkg/utils"
)

// maxForecastDays caps the day series returned to clients.
const maxForecastDays = 7

// normalizeCurrent shapes a forecast payload's "current" block into city
// current conditions. Missing or mistyped fields become nil, never errors.
func normalizeCurrent(payload map[string]interface{}) domain.CurrentConditions {
	current, _ := payload["current"].(map[string]interface{})

	return domain.CurrentConditions{
		Temperature: utils.Float(current["temperature_2m"]),
		Humidity:    utils.Float(current["relative_humidity_2m"]),
		WindSpeed:   utils.Float(current["wind_speed_10m"]),
		Time:        utils.String(current["time"]),
	}
}

// normalizeMapCurrent shapes a forecast payload's "current" block into
// map-point conditions.
func normalizeMapCurrent(payload map[string]interface{}) domain.MapConditions {
	current, _ := payload["current"].(map[string]interface{})

	return domain.MapConditions{
		Temperature:   utils.Float(current["temperature_2m"]),
		Precipitation: utils.Float(current["precipitation"]),
		WindSpeed:     utils.Float(current["wind_speed_10m"]),
		WindDirection: utils.Float(current["wind_direction_10m"]),
		Time:          utils.String(current["time"]),
	}
}

// normalizeDaily zips the payload's parallel daily arrays into at most
// maxForecastDays entries, index-aligned on the date array. Values missing
// from a shorter or mistyped companion array become nil. It reports false
// only when the daily date array itself is absent, which the caller must
// treat as an upstream shape failure.
func normalizeDaily(payload map[string]interface{}) ([]domain.ForecastDay, bool) {
	daily, _ := payload["daily"].(map[string]interface{})
	dates, ok := daily["time"].([]interface{})
	if !ok {
		return nil, false
	}

	tempMax, _ := daily["temperature_2m_max"].([]interface{})
	tempMin, _ := daily["temperature_2m_min"].([]interface{})
	precipitation, _ := daily["precipitation_sum"].([]interface{})
	windMax, _ := daily["wind_speed_10m_max"].([]interface{})

	n := len(dates)
	if n > maxForecastDays {
		n = maxForecastDays
	}

	days := make([]domain.ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		var date string
		if s := utils.String(dates[i]); s != nil {
			date = *s
		}

		days = append(days, domain.ForecastDay{
			Date:             date,
			TempMax:          utils.FloatAt(tempMax, i),
			TempMin:          utils.FloatAt(tempMin, i),
			PrecipitationSum: utils.FloatAt(precipitation, i),
			WindSpeedMax:     utils.FloatAt(windMax, i),
		})
	}

	return days, true
}
