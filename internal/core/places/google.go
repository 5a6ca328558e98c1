// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package places

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

const (
	// biasRadiusMeters is the largest circle the text search accepts.
	biasRadiusMeters = 50000.0

	fieldMask = "places.id,places.displayName,places.formattedAddress,places.location,places.googleMapsUri"

	fallbackTitle   = "Unknown Place"
	fallbackAddress = "Address not available"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GoogleClient queries the Google Places text search endpoint.
type GoogleClient struct {
	client   *fasthttp.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// NewGoogleClient creates a [GoogleClient]. It returns nil when apiKey is
// empty so callers can treat the provider as disabled.
func NewGoogleClient(endpoint, apiKey string, timeout time.Duration) *GoogleClient {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}

	return &GoogleClient{
		client: &fasthttp.Client{
			Name:                "kalamanch-directory",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		endpoint: endpoint,
		apiKey:   apiKey,
		timeout:  timeout,
	}
}

type searchTextRequest struct {
	TextQuery    string        `json:"textQuery"`
	LocationBias *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string  `json:"formattedAddress"`
		Location         *latLng `json:"location"`
		GoogleMapsURI    string  `json:"googleMapsUri"`
	} `json:"places"`
}

// SearchPlaces implements [Provider].
func (c *GoogleClient) SearchPlaces(ctx context.Context, request Request) ([]Place, error) {
	if c == nil {
		return nil, ErrDisabled
	}

	body := searchTextRequest{
		TextQuery: fmt.Sprintf("%s (music studios, art schools, performance venues, artist agencies)", request.Query),
	}
	if request.Origin != nil {
		body.LocationBias = &locationBias{Circle: circle{
			Center: latLng{Latitude: request.Origin.Lat, Longitude: request.Origin.Lng},
			Radius: biasRadiusMeters,
		}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("places: encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(res)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
	req.SetBody(payload)

	if err := c.client.DoDeadline(req, res, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}

	if status := res.StatusCode(); status != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, status, truncate(res.Body(), 200))
	}

	var decoded searchTextResponse
	if err := json.Unmarshal(res.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	places := make([]Place, 0, len(decoded.Places))
	for _, item := range decoded.Places {
		place := Place{
			Title:            orDefault(item.DisplayName.Text, fallbackTitle),
			FormattedAddress: orDefault(item.FormattedAddress, fallbackAddress),
			PlaceID:          item.ID,
			SourceURI:        item.GoogleMapsURI,
		}
		if item.Location != nil {
			lat, lng := item.Location.Latitude, item.Location.Longitude
			place.Lat, place.Lng = &lat, &lng
		}
		places = append(places, place)
	}

	return places, nil
}

// deadline is the earlier of the context deadline and the client timeout.
func (c *GoogleClient) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
