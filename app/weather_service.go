package app

import (
	"context"
	"strings"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
	"shetkarai/models"
	"shetkarai/ports"
)

// WeatherService fetches a weather snapshot and derives farming
// advisories from it.
type WeatherService struct {
	provider ports.WeatherProvider
}

func NewWeatherService(provider ports.WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

// Advise returns the current snapshot for the coordinates together
// with the ordered advisory list.
func (s *WeatherService) Advise(ctx context.Context, lat, lon string, l lang.Language) (*models.WeatherSnapshot, []string, error) {
	snapshot, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		return nil, nil, err
	}
	if snapshot == nil {
		return nil, nil, errors.ExternalServiceError("weather", nil)
	}
	return snapshot, Advisories(snapshot, l), nil
}

// Advisories evaluates the fixed rule list against a snapshot. Rules
// are independent, evaluated in a deterministic order (temperature,
// humidity, condition), each contributing at most one message. When no
// rule fires a single fallback message is returned. A nil snapshot
// yields the no-data message.
func Advisories(snapshot *models.WeatherSnapshot, l lang.Language) []string {
	l = lang.Normalize(l.String())

	if snapshot == nil {
		return []string{i18n.AdvisoryText(i18n.AdvisoryNoWeatherData, l)}
	}

	var fired []i18n.Advisory

	if snapshot.Temperature > 35 {
		fired = append(fired, i18n.AdvisoryHighTemp)
	} else if snapshot.Temperature < 10 {
		fired = append(fired, i18n.AdvisoryLowTemp)
	}

	if snapshot.Humidity > 80 {
		fired = append(fired, i18n.AdvisoryHighHumidity)
	} else if snapshot.Humidity < 30 {
		fired = append(fired, i18n.AdvisoryLowHumidity)
	}

	switch strings.ToLower(snapshot.Condition) {
	case "rain", "thunderstorm", "drizzle":
		fired = append(fired, i18n.AdvisoryRainfall)
	case "clear":
		fired = append(fired, i18n.AdvisoryClearWeather)
	}

	if len(fired) == 0 {
		fired = append(fired, i18n.AdvisoryNone)
	}

	messages := make([]string, len(fired))
	for i, advisory := range fired {
		messages[i] = i18n.AdvisoryText(advisory, l)
	}
	return messages
}
