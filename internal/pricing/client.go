// README: RapidAPI booking client for flight and hotel price lookups.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client calls the booking price endpoints on RapidAPI. All methods return an
// error on any transport or decode failure; callers are expected to fall back
// to heuristic estimates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
}

// NewClient creates a price lookup client. The 10s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
func NewClient(apiKey, host string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://" + host,
		apiKey:     apiKey,
		host:       host,
	}
}

type flightPriceResponse struct {
	Price *float64 `json:"price"`
}

type hotelSearchResponse struct {
	Hotels []struct {
		Price struct {
			Amount float64 `json:"amount"`
		} `json:"price"`
	} `json:"hotels"`
}

// MinFlightPrice returns the minimum round-trip economy fare between two
// airport IDs (e.g. "SRQ.AIRPORT" -> "ORD.AIRPORT").
func (c *Client) MinFlightPrice(ctx context.Context, fromID, toID string, depart, ret time.Time) (float64, error) {
	params := url.Values{}
	params.Set("fromId", fromID)
	params.Set("toId", toID)
	params.Set("departDate", depart.Format("2006-01-02"))
	params.Set("returnDate", ret.Format("2006-01-02"))
	params.Set("cabinClass", "ECONOMY")
	params.Set("currency_code", "USD")

	var resp flightPriceResponse
	if err := c.get(ctx, "/api/v1/flights/getMinPrice", params, &resp); err != nil {
		return 0, err
	}
	if resp.Price == nil || *resp.Price <= 0 {
		return 0, fmt.Errorf("no flight price for %s -> %s", fromID, toID)
	}
	return *resp.Price, nil
}

// MinHotelPrice returns the cheapest hotel rate found for the stay.
func (c *Client) MinHotelPrice(ctx context.Context, location string, checkIn, checkOut time.Time) (float64, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("checkin_date", checkIn.Format("2006-01-02"))
	params.Set("checkout_date", checkOut.Format("2006-01-02"))
	params.Set("adults", "2")
	params.Set("currency_code", "USD")

	var resp hotelSearchResponse
	if err := c.get(ctx, "/api/v1/hotels/searchHotels", params, &resp); err != nil {
		return 0, err
	}

	min := 0.0
	for _, h := range resp.Hotels {
		if h.Price.Amount <= 0 {
			continue
		}
		if min == 0 || h.Price.Amount < min {
			min = h.Price.Amount
		}
	}
	if min == 0 {
		return 0, fmt.Errorf("no hotel prices for %s", location)
	}
	return min, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("price api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("price api read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("price api status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("price api decode: %w", err)
	}
	return nil
}
