// Package geocode resolves free-text place names to coordinates, first
// through a static alias table and then through the Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"skycast/internal/model"
)

const (
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	requestTimeout    = 10 * time.Second
)

// aliases maps lower-cased place names (Latin and Hebrew spellings) to
// coordinates so common lookups skip the network round trip entirely.
var aliases = map[string]model.Coordinate{
	"tel aviv":  {Lat: 32.0853, Lng: 34.7818},
	"תל אביב":   {Lat: 32.0853, Lng: 34.7818},
	"tlv":       {Lat: 32.0853, Lng: 34.7818},
	"jerusalem": {Lat: 31.7683, Lng: 35.2137},
	"ירושלים":   {Lat: 31.7683, Lng: 35.2137},
	"haifa":     {Lat: 32.7940, Lng: 34.9896},
	"חיפה":      {Lat: 32.7940, Lng: 34.9896},
	"yehud":     {Lat: 32.0333, Lng: 34.8833},
	"יהוד":      {Lat: 32.0333, Lng: 34.8833},
	"ramat gan": {Lat: 32.0680, Lng: 34.8248},
	"רמת גן":    {Lat: 32.0680, Lng: 34.8248},
	"holon":     {Lat: 32.0114, Lng: 34.7748},
	"חולון":     {Lat: 32.0114, Lng: 34.7748},
}

// Resolver maps locations to coordinates.
type Resolver struct {
	apiKey     string
	geocodeURL string
	rest       *resty.Client
	logger     *zap.Logger
}

// NewResolver creates a resolver using the production geocoding endpoint.
func NewResolver(apiKey string, logger *zap.Logger) *Resolver {
	return NewResolverWithURL(defaultGeocodeURL, apiKey, logger)
}

// NewResolverWithURL creates a resolver pointing at a custom geocoding
// endpoint (for tests).
func NewResolverWithURL(geocodeURL, apiKey string, logger *zap.Logger) *Resolver {
	return &Resolver{
		apiKey:     apiKey,
		geocodeURL: geocodeURL,
		rest:       resty.New().SetTimeout(requestTimeout),
		logger:     logger,
	}
}

// geocodeResponse mirrors the slice of the Geocoding API payload we consume.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location model.Coordinate `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve converts a location to coordinates. Explicit coordinates pass
// through unchanged; names are looked up in the alias table and then
// geocoded. Every failure mode (transport error, non-success status, empty
// result set) collapses to ok == false — callers cannot and should not
// distinguish "provider down" from "place doesn't exist".
func (r *Resolver) Resolve(ctx context.Context, loc model.Location) (model.Coordinate, bool) {
	if loc.Coord != nil {
		return *loc.Coord, true
	}

	key := strings.ToLower(strings.TrimSpace(loc.Name))
	if coord, ok := aliases[key]; ok {
		r.logger.Debug("alias table hit", zap.String("location", key))
		return coord, true
	}

	resp, err := r.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"address": loc.Name,
			"key":     r.apiKey,
		}).
		Get(r.geocodeURL)
	if err != nil {
		r.logger.Warn("geocoding request failed", zap.String("location", loc.Name), zap.Error(err))
		return model.Coordinate{}, false
	}
	if resp.StatusCode() != http.StatusOK {
		r.logger.Warn("geocoding returned non-OK status",
			zap.String("location", loc.Name), zap.Int("status", resp.StatusCode()))
		return model.Coordinate{}, false
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		r.logger.Warn("geocoding response is not valid JSON", zap.Error(err))
		return model.Coordinate{}, false
	}
	if len(parsed.Results) == 0 {
		return model.Coordinate{}, false
	}

	coord := parsed.Results[0].Geometry.Location
	r.logger.Debug("geocoded location",
		zap.String("location", loc.Name), zap.Float64("lat", coord.Lat), zap.Float64("lng", coord.Lng))
	return coord, true
}
