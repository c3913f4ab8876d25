// Package weather fetches current conditions from the OpenWeatherMap
// API.
package weather

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"shetkarai/models"
	"shetkarai/ports"
)

const requestTimeout = 10 * time.Second

// Client calls the OpenWeatherMap current-weather endpoint. Upstream
// failures are logged and reported as a nil snapshot, never as an
// error.
type Client struct {
	rest   *resty.Client
	apiKey string
	url    string
	logger *zap.Logger
}

// NewClient creates a weather client for the given endpoint and key.
func NewClient(apiURL, apiKey string, logger *zap.Logger) ports.WeatherProvider {
	rest := resty.New().SetTimeout(requestTimeout)
	return &Client{
		rest:   rest,
		apiKey: apiKey,
		url:    apiURL,
		logger: logger,
	}
}

// openWeatherResponse mirrors the subset of the OpenWeatherMap payload
// the advisor consumes.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Name string `json:"name"`
}

// Current fetches metric-unit conditions for the coordinate pair.
func (c *Client) Current(ctx context.Context, lat, lon string) (*models.WeatherSnapshot, error) {
	var payload openWeatherResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   lat,
			"lon":   lon,
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&payload).
		Get(c.url)

	if err != nil {
		c.logger.Warn("weather request failed", zap.Error(err))
		return nil, nil
	}
	if resp.StatusCode() != 200 {
		c.logger.Warn("weather request returned non-200",
			zap.Int("status", resp.StatusCode()),
			zap.String("lat", lat),
			zap.String("lon", lon))
		return nil, nil
	}

	snapshot := &models.WeatherSnapshot{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		City:        payload.Name,
	}
	if len(payload.Weather) > 0 {
		snapshot.Condition = payload.Weather[0].Main
	}
	return snapshot, nil
}
