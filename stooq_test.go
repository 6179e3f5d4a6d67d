package fantasy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestStooqDaily(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, "Date,Open,High,Low,Close,Volume\n"+
			"2024-01-02,468.10,470.00,467.00,468.30,1000\n"+
			"2024-01-03,467.00,468.00,465.00,466.14,1200\n")
	}))
	defer server.Close()

	p := NewStooqProvider()
	p.baseURL = server.URL

	prices, err := p.Daily(context.Background(), "SPY", NewDate(2024, time.January, 2), NewDate(2024, time.January, 10))
	if err != nil {
		t.Fatalf("Daily() returned an unexpected error: %v", err)
	}

	if got := gotQuery.Get("s"); got != "spy.us" {
		t.Errorf("symbol sent = %q, want spy.us", got)
	}
	if got := gotQuery.Get("d1"); got != "20240102" {
		t.Errorf("d1 sent = %q, want 20240102", got)
	}
	// The half open window narrows to stooq's inclusive d2.
	if got := gotQuery.Get("d2"); got != "20240109" {
		t.Errorf("d2 sent = %q, want 20240109", got)
	}

	if prices.Len() != 2 {
		t.Fatalf("Daily() = %d closes, want 2", prices.Len())
	}
	if v, ok := prices.Get(NewDate(2024, time.January, 2)); !ok || v != 468.30 {
		t.Errorf("close on 2024-01-02 = %v, want 468.30", v)
	}
}

// TestStooqNoData checks that an unknown symbol is an empty answer, not a
// failure: the chain moves on without noise.
func TestStooqNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "No data")
	}))
	defer server.Close()

	p := NewStooqProvider()
	p.baseURL = server.URL

	prices, err := p.Daily(context.Background(), "NOPE", NewDate(2024, time.January, 2), NewDate(2024, time.January, 10))
	if err != nil {
		t.Fatalf("Daily() returned an unexpected error: %v", err)
	}
	if prices.Len() != 0 {
		t.Errorf("Daily() = %d closes, want none", prices.Len())
	}
}

func TestStooqServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewStooqProvider()
	p.baseURL = server.URL

	if _, err := p.Daily(context.Background(), "SPY", NewDate(2024, time.January, 2), NewDate(2024, time.January, 10)); err == nil {
		t.Error("Daily() = nil error on a 503, want a failure")
	}
}

func TestStooqSymbol(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SPY", "spy.us"},
		{"BRK-B", "brk-b.us"},
		{"EUNL.DE", "eunl.de"}, // already carries an exchange suffix
	}
	for _, tt := range tests {
		if got := stooqSymbol(tt.in); got != tt.want {
			t.Errorf("stooqSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
