// Package lasership submits shipment orders to the LaserShip carrier API
// and retrieves the resulting labels and tracking numbers.
package lasership

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.lasership.com"

	// labelFormat selects a 4x6 inch PDF label in the PlaceOrder endpoint.
	labelFormat = "DN4x6"
)

// SubmissionError reports a carrier rejection. Body holds the carrier's
// raw response so the failure can be recorded verbatim for the order.
type SubmissionError struct {
	OrderID    string
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("carrier rejected order %s: status %d: %s", e.OrderID, e.StatusCode, e.Body)
}

// Credentials authenticate against the carrier API. The test flag routes
// submissions to the carrier's sandbox so no real shipment is purchased.
type Credentials struct {
	APIID  string
	APIKey string
	Test   bool
}

// Gateway implements CarrierGateway against the LaserShip PlaceOrder
// endpoint.
type Gateway struct {
	baseURL     string
	credentials Credentials
	identity    ShipperIdentity
	client      *http.Client
}

// NewGateway creates a LaserShip carrier gateway. An empty baseURL selects
// the production endpoint; a nil client selects http.DefaultClient.
func NewGateway(baseURL string, credentials Credentials, identity ShipperIdentity, client *http.Client) *Gateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		baseURL:     baseURL,
		credentials: credentials,
		identity:    identity,
		client:      client,
	}
}

// Submit purchases a shipment for the given order. The order must already
// carry its resolved delivery date.
func (g *Gateway) Submit(ctx context.Context, o *order.Order) (ports.SubmissionResult, error) {
	shipDate, err := o.ShipDate()
	if err != nil {
		return ports.SubmissionResult{}, err
	}

	payload, err := json.Marshal(buildWireOrder(o, g.identity, services.NewPullSchedule(shipDate)))
	if err != nil {
		return ports.SubmissionResult{}, fmt.Errorf("encode order %s: %w", o.ID(), err)
	}

	form := url.Values{}
	form.Set("Order", string(payload))

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.placeOrderURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return ports.SubmissionResult{}, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := g.client.Do(request)
	if err != nil {
		return ports.SubmissionResult{}, fmt.Errorf("submit order %s: %w", o.ID(), err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return ports.SubmissionResult{}, fmt.Errorf("read response for order %s: %w", o.ID(), err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return ports.SubmissionResult{}, &SubmissionError{
			OrderID:    o.ID(),
			StatusCode: response.StatusCode,
			Body:       string(body),
		}
	}

	return parseResult(o.ID(), body)
}

func (g *Gateway) placeOrderURL() string {
	testFlag := 0
	if g.credentials.Test {
		testFlag = 1
	}
	return fmt.Sprintf("%s/Method/PlaceOrder/json/%s/%s/%d/1/%s",
		g.baseURL, g.credentials.APIID, g.credentials.APIKey, testFlag, labelFormat)
}

type placeOrderResponse struct {
	Order struct {
		CustomerOrderNumber string `json:"CustomerOrderNumber"`
		Label               string `json:"Label"`
		Pieces              []struct {
			LaserShipBarcode string `json:"LaserShipBarcode"`
		} `json:"Pieces"`
	} `json:"Order"`
}

func parseResult(orderID string, body []byte) (ports.SubmissionResult, error) {
	var response placeOrderResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return ports.SubmissionResult{}, fmt.Errorf("decode response for order %s: %w", orderID, err)
	}

	label, err := base64.StdEncoding.DecodeString(response.Order.Label)
	if err != nil {
		return ports.SubmissionResult{}, fmt.Errorf("decode label for order %s: %w", orderID, err)
	}

	if len(response.Order.Pieces) == 0 {
		return ports.SubmissionResult{}, fmt.Errorf("response for order %s carries no pieces", orderID)
	}

	return ports.SubmissionResult{
		OrderID:        response.Order.CustomerOrderNumber,
		TrackingNumber: response.Order.Pieces[0].LaserShipBarcode,
		Label:          label,
	}, nil
}
