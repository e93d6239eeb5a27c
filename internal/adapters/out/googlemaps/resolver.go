// Package googlemaps resolves destination delivery dates using the Google
// Geocoding and Time Zone web services.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"

	statusOK         = "OK"
	statusZeroResult = "ZERO_RESULTS"

	deliveryDateLayout = "2006-01-02T15:04:05Z"
)

// AddressNotFoundError reports a destination address the geocoder could
// not locate.
type AddressNotFoundError struct {
	Address string
}

func (e *AddressNotFoundError) Error() string {
	return fmt.Sprintf("Address not found: %s", e.Address)
}

// Resolver computes delivery commitments by geocoding the destination,
// looking up its UTC offset, and projecting the pull time plus transit
// days into the destination's local day.
type Resolver struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewResolver creates a Google Maps delivery date resolver. An empty
// baseURL selects the production endpoint; a nil client selects
// http.DefaultClient.
func NewResolver(baseURL, apiKey string, client *http.Client) *Resolver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// Resolve computes the UTC delivery commitment for a destination address.
// The pull time's wall clock is reinterpreted at the destination's UTC
// offset before the transit days are added, so the commitment lands on
// the correct local calendar day.
func (r *Resolver) Resolve(ctx context.Context, address string, pullTime time.Time, transitDays int) (string, error) {
	lat, lng, err := r.geocode(ctx, address)
	if err != nil {
		return "", err
	}

	offset, err := r.utcOffset(ctx, lat, lng)
	if err != nil {
		return "", err
	}

	zone := time.FixedZone("destination", offset)
	local := time.Date(
		pullTime.Year(), pullTime.Month(), pullTime.Day(),
		pullTime.Hour(), pullTime.Minute(), pullTime.Second(), 0,
		zone,
	)

	return local.AddDate(0, 0, transitDays).UTC().Format(deliveryDateLayout), nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (r *Resolver) geocode(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", r.apiKey)

	var response geocodeResponse
	if err := r.get(ctx, "/maps/api/geocode/json", params, &response); err != nil {
		return 0, 0, fmt.Errorf("geocode: %w", err)
	}

	if response.Status == statusZeroResult || len(response.Results) == 0 {
		return 0, 0, &AddressNotFoundError{Address: address}
	}
	if response.Status != statusOK {
		return 0, 0, fmt.Errorf("geocode: unexpected status %s", response.Status)
	}

	location := response.Results[0].Geometry.Location
	return location.Lat, location.Lng, nil
}

type timezoneResponse struct {
	Status    string `json:"status"`
	RawOffset int    `json:"rawOffset"`
	DstOffset int    `json:"dstOffset"`
}

// utcOffset returns the destination's total UTC offset in seconds,
// daylight saving included.
func (r *Resolver) utcOffset(ctx context.Context, lat, lng float64) (int, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("timestamp", fmt.Sprintf("%d", time.Now().Unix()))
	params.Set("key", r.apiKey)

	var response timezoneResponse
	if err := r.get(ctx, "/maps/api/timezone/json", params, &response); err != nil {
		return 0, fmt.Errorf("timezone: %w", err)
	}

	if response.Status != statusOK {
		return 0, fmt.Errorf("timezone: unexpected status %s", response.Status)
	}

	return response.RawOffset + response.DstOffset, nil
}

func (r *Resolver) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s%s?%s", r.baseURL, path, params.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	response, err := r.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response code %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(out)
}
