package ipgeo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store-locator/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodePayload(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("bad test payload %q: %v", raw, err)
	}
	return payload
}

func TestExtractors_NormalizeIdenticalCoordinate(t *testing.T) {
	want := types.NewCoords(1.5, 103.7)

	tests := []struct {
		name    string
		shape   Shape
		payload string
	}{
		{"separate string fields", ShapeLatitudeLongitude, `{"latitude":"1.5","longitude":"103.7"}`},
		{"separate numeric fields", ShapeLatLon, `{"lat":1.5,"lon":103.7}`},
		{"combined loc string", ShapeLoc, `{"loc":"1.5,103.7"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extract := extractors[tt.shape]
			got, err := extract(decodePayload(t, tt.payload))
			if err != nil {
				t.Fatalf("extract() unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("extract() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestExtractors_Failures(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		payload string
	}{
		{"missing longitude", ShapeLatitudeLongitude, `{"latitude":1.5}`},
		{"non-numeric string", ShapeLatLon, `{"lat":"north","lon":103.7}`},
		{"loc without comma", ShapeLoc, `{"loc":"1.5 103.7"}`},
		{"loc with too many parts", ShapeLoc, `{"loc":"1.5,103.7,0"}`},
		{"loc missing", ShapeLoc, `{"ip":"1.2.3.4"}`},
		{"boolean field", ShapeLatitudeLongitude, `{"latitude":true,"longitude":103.7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extract := extractors[tt.shape]
			if _, err := extract(decodePayload(t, tt.payload)); err == nil {
				t.Error("extract() expected an error")
			}
		})
	}
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Locate_FirstValidProviderWins(t *testing.T) {
	failing := jsonServer(t, http.StatusInternalServerError, `{"error":"down"}`)
	malformed := jsonServer(t, http.StatusOK, `not json`)
	outOfRange := jsonServer(t, http.StatusOK, `{"lat":120.0,"lon":200.0}`)
	valid := jsonServer(t, http.StatusOK, `{"loc":"3.1390,101.6869"}`)
	neverReached := jsonServer(t, http.StatusOK, `{"lat":9.9,"lon":9.9}`)

	c := NewClient([]Provider{
		{Name: "failing", URL: failing.URL, Shape: ShapeLatLon},
		{Name: "malformed", URL: malformed.URL, Shape: ShapeLatLon},
		{Name: "out-of-range", URL: outOfRange.URL, Shape: ShapeLatLon},
		{Name: "valid", URL: valid.URL, Shape: ShapeLoc},
		{Name: "never-reached", URL: neverReached.URL, Shape: ShapeLatLon},
	}, time.Second, testLogger())

	got, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate() unexpected error: %v", err)
	}

	want := types.NewCoords(3.1390, 101.6869)
	if got != want {
		t.Errorf("Locate() = %+v, want %+v", got, want)
	}
}

func TestClient_Locate_AllProvidersFail(t *testing.T) {
	down := jsonServer(t, http.StatusBadGateway, ``)
	garbage := jsonServer(t, http.StatusOK, `[]`)

	c := NewClient([]Provider{
		{Name: "down", URL: down.URL, Shape: ShapeLatLon},
		{Name: "garbage", URL: garbage.URL, Shape: ShapeLatLon},
	}, time.Second, testLogger())

	_, err := c.Locate(context.Background())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Locate() error = %v, want ErrExhausted", err)
	}
}

func TestClient_Locate_NoProviders(t *testing.T) {
	c := NewClient(nil, time.Second, testLogger())

	_, err := c.Locate(context.Background())
	if !errors.Is(err, ErrNoProviders) {
		t.Fatalf("Locate() error = %v, want ErrNoProviders", err)
	}
}

func TestClient_Locate_SlowProviderTimesOut(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			_, _ = w.Write([]byte(`{"lat":1.0,"lon":1.0}`))
		}
	}))
	t.Cleanup(slow.Close)
	fast := jsonServer(t, http.StatusOK, `{"latitude":3.0733,"longitude":101.5185}`)

	c := NewClient([]Provider{
		{Name: "slow", URL: slow.URL, Shape: ShapeLatLon},
		{Name: "fast", URL: fast.URL, Shape: ShapeLatitudeLongitude},
	}, 100*time.Millisecond, testLogger())

	got, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate() unexpected error: %v", err)
	}

	want := types.NewCoords(3.0733, 101.5185)
	if got != want {
		t.Errorf("Locate() = %+v, want %+v", got, want)
	}
}

func TestClient_Locate_ContextCancelled(t *testing.T) {
	valid := jsonServer(t, http.StatusOK, `{"lat":1.0,"lon":1.0}`)
	c := NewClient([]Provider{
		{Name: "valid", URL: valid.URL, Shape: ShapeLatLon},
	}, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Locate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Locate() error = %v, want context.Canceled", err)
	}
}

func TestClient_Locate_UnknownShape(t *testing.T) {
	valid := jsonServer(t, http.StatusOK, `{"lat":1.0,"lon":1.0}`)
	c := NewClient([]Provider{
		{Name: "misconfigured", URL: valid.URL, Shape: "geojson"},
	}, time.Second, testLogger())

	if _, err := c.Locate(context.Background()); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Locate() error = %v, want ErrExhausted", err)
	}
}
