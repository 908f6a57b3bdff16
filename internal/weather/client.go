// Package weather is a client for the Google Weather API current-conditions
// and hourly-forecast endpoints. All failures come back as *model.Error
// values; nothing is retried and nothing is cached.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"skycast/internal/geocode"
	"skycast/internal/model"
)

const (
	defaultCurrentURL  = "https://weather.googleapis.com/v1/currentConditions:lookup"
	defaultForecastURL = "https://weather.googleapis.com/v1/forecast/hours:lookup"
	requestTimeout     = 10 * time.Second

	// DefaultHours is the forecast horizon used when none is given.
	DefaultHours = 24

	defaultLanguage = "en"
)

type resolver interface {
	Resolve(ctx context.Context, loc model.Location) (model.Coordinate, bool)
}

// Client queries the weather endpoints. It holds only the API key, the
// endpoint URLs and a resolver; no state survives a call.
type Client struct {
	apiKey      string
	currentURL  string
	forecastURL string
	rest        *resty.Client
	resolver    resolver
	logger      *zap.Logger
}

// NewClient creates a client against the production endpoints.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      apiKey,
		currentURL:  defaultCurrentURL,
		forecastURL: defaultForecastURL,
		rest:        resty.New().SetTimeout(requestTimeout),
		resolver:    geocode.NewResolver(apiKey, logger),
		logger:      logger,
	}
}

// NewClientWithURLs creates a client pointing at custom endpoint URLs
// (for tests).
func NewClientWithURLs(currentURL, forecastURL, geocodeURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      apiKey,
		currentURL:  currentURL,
		forecastURL: forecastURL,
		rest:        resty.New().SetTimeout(requestTimeout),
		resolver:    geocode.NewResolverWithURL(geocodeURL, apiKey, logger),
		logger:      logger,
	}
}

var errMissingKey = &model.Error{Message: "Missing API key. Set GOOGLE_API_KEY environment variable."}

// Current fetches and flattens current conditions for a location.
func (c *Client) Current(ctx context.Context, loc model.Location, lang string) (*model.CurrentConditions, error) {
	if c.apiKey == "" {
		return nil, errMissingKey
	}

	coord, ok := c.resolver.Resolve(ctx, loc)
	if !ok {
		return nil, &model.Error{Message: "Could not find location: " + loc.Label()}
	}

	body, apiErr := c.get(ctx, c.currentURL, c.queryParams(coord, lang))
	if apiErr != nil {
		return nil, apiErr
	}

	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &model.Error{Message: "Request failed: " + err.Error()}
	}

	return raw.normalize(loc.Label()), nil
}

// Forecast fetches the hourly forecast for a location. Entries keep the
// provider's order.
func (c *Client) Forecast(ctx context.Context, loc model.Location, hours int, lang string) (*model.Forecast, error) {
	if c.apiKey == "" {
		return nil, errMissingKey
	}
	if hours <= 0 {
		hours = DefaultHours
	}

	coord, ok := c.resolver.Resolve(ctx, loc)
	if !ok {
		return nil, &model.Error{Message: "Could not find location: " + loc.Label()}
	}

	params := c.queryParams(coord, lang)
	params["hours"] = strconv.Itoa(hours)

	body, apiErr := c.get(ctx, c.forecastURL, params)
	if apiErr != nil {
		return nil, apiErr
	}

	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &model.Error{Message: "Request failed: " + err.Error()}
	}

	hourly := make([]model.ForecastEntry, 0, len(raw.ForecastHours))
	for i := range raw.ForecastHours {
		hourly = append(hourly, raw.ForecastHours[i].normalize())
	}

	return &model.Forecast{Location: loc.Label(), Hourly: hourly}, nil
}

func (c *Client) queryParams(coord model.Coordinate, lang string) map[string]string {
	if lang == "" {
		lang = defaultLanguage
	}
	return map[string]string{
		"key":                c.apiKey,
		"location.latitude":  strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		"location.longitude": strconv.FormatFloat(coord.Lng, 'f', -1, 64),
		"languageCode":       lang,
	}
}

// get performs a single GET with no retries. Transport failures and
// non-200 statuses come back as structured errors, the latter carrying the
// status code and the raw response body.
func (c *Client) get(ctx context.Context, url string, params map[string]string) ([]byte, *model.Error) {
	c.logger.Debug("calling weather endpoint", zap.String("url", url))

	resp, err := c.rest.R().SetContext(ctx).SetQueryParams(params).Get(url)
	if err != nil {
		c.logger.Warn("weather request failed", zap.String("url", url), zap.Error(err))
		return nil, &model.Error{Message: "Request failed: " + err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("weather endpoint returned non-OK status",
			zap.String("url", url), zap.Int("status", resp.StatusCode()))
		return nil, &model.Error{
			Message: fmt.Sprintf("API error: %d", resp.StatusCode()),
			Details: resp.String(),
		}
	}
	return resp.Body(), nil
}
