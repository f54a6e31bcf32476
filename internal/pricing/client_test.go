package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", "test-host")
	c.baseURL = srv.URL
	return c
}

func TestMinFlightPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/flights/getMinPrice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("fromId") != "SRQ.AIRPORT" || q.Get("toId") != "ORD.AIRPORT" {
			t.Errorf("unexpected route %s -> %s", q.Get("fromId"), q.Get("toId"))
		}
		if q.Get("cabinClass") != "ECONOMY" {
			t.Errorf("expected ECONOMY cabin, got %s", q.Get("cabinClass"))
		}
		w.Write([]byte(`{"price": 284.5}`))
	})

	depart := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	ret := depart.AddDate(0, 0, 2)
	price, err := c.MinFlightPrice(context.Background(), "SRQ.AIRPORT", "ORD.AIRPORT", depart, ret)
	if err != nil {
		t.Fatalf("MinFlightPrice: %v", err)
	}
	if price != 284.5 {
		t.Errorf("expected 284.5, got %v", price)
	}
}

func TestMinFlightPrice_NoPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"price": null}`))
	})
	_, err := c.MinFlightPrice(context.Background(), "SRQ.AIRPORT", "ORD.AIRPORT", time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error when price is null")
	}
}

func TestMinHotelPrice_PicksCheapest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/hotels/searchHotels" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"hotels": [
			{"price": {"amount": 410}},
			{"price": {"amount": 0}},
			{"price": {"amount": 325.75}}
		]}`))
	})

	price, err := c.MinHotelPrice(context.Background(), "Chicago", time.Now(), time.Now().AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("MinHotelPrice: %v", err)
	}
	if price != 325.75 {
		t.Errorf("expected 325.75, got %v", price)
	}
}

func TestMinHotelPrice_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hotels": []}`))
	})
	_, err := c.MinHotelPrice(context.Background(), "Nowhere", time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error for empty hotel list")
	}
}

func TestGet_Non200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	_, err := c.MinFlightPrice(context.Background(), "A", "B", time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
