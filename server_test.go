package traintracker

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/local-train-tracker/config"
	"github.com/theoremus-urban-solutions/local-train-tracker/formatter"
	"github.com/theoremus-urban-solutions/local-train-tracker/gtfsrt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.Dataset.Path = filepath.Join("dataset", "testdata", "trains.csv")
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	app.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, testApp(t), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Status != "ok" || res.Records != 5 {
		t.Errorf("unexpected health %+v", res)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}
}

func TestRequestID_Propagated(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	testApp(t).Router().ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}

func TestStations(t *testing.T) {
	w := get(t, testApp(t), "/api/stations")
	var res formatter.StationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Count != len(res.Stations) || res.Count == 0 {
		t.Errorf("unexpected stations %+v", res)
	}
}

func TestTrain(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name     string
		target   string
		status   int
		contains string
	}{
		{"json", "/api/trains/12345", http.StatusOK, `"current_station":"A"`},
		{"text", "/api/trains/12345?format=text", http.StatusOK, " Next Station: B"},
		{"xml", "/api/trains/12345?format=XML", http.StatusOK, "<Number>12345</Number>"},
		{"not found", "/api/trains/00000", http.StatusNotFound, "Train number 00000 not found in dataset!"},
		{"not found text", "/api/trains/00000?format=text", http.StatusNotFound, "Train number 00000 not found in dataset!"},
		{"bad format", "/api/trains/12345?format=csv", http.StatusBadRequest, "Unsupported format: csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, app, tt.target)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("expected body to contain %q, got %s", tt.contains, w.Body.String())
			}
		})
	}
}

func TestRoute(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name     string
		target   string
		status   int
		contains string
	}{
		{"json", "/api/route?from=B&to=C", http.StatusOK, `"count":1`},
		{"case and whitespace", "/api/route?from=%20andheri&to=BANDRA%20", http.StatusOK, `"count":2`},
		{"text", "/api/route?from=X&to=Y&format=text", http.StatusOK, "Churchgate Slow (99999)\nType: Slow | Crowd: Medium | Delay: 15 min\n"},
		{"empty json", "/api/route?from=X&to=Z", http.StatusOK, `"trains":[]`},
		{"empty text", "/api/route?from=X&to=Z&format=text", http.StatusOK, "No trains found between X and Z."},
		{"xml", "/api/route?from=B&to=C&format=xml", http.StatusOK, "<Count>1</Count>"},
		{"missing to", "/api/route?from=X", http.StatusBadRequest, "Please select both From and To stations."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, app, tt.target)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("expected body to contain %q, got %s", tt.contains, w.Body.String())
			}
		})
	}
}

func TestRoute_Protobuf(t *testing.T) {
	w := get(t, testApp(t), "/api/route?from=andheri&to=bandra&format=pb")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	feed, err := gtfsrt.Unmarshal(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(feed.GetEntity()) != 2 {
		t.Errorf("expected 2 entities, got %d", len(feed.GetEntity()))
	}
}

func TestRouteChart(t *testing.T) {
	app := testApp(t)

	w := get(t, app, "/api/route/chart?from=Andheri&to=Bandra")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("expected a PNG body")
	}

	cached := get(t, app, "/api/route/chart?from=Andheri&to=Bandra")
	if !bytes.Equal(cached.Body.Bytes(), w.Body.Bytes()) {
		t.Error("expected a repeated request to hit the chart cache")
	}

	empty := get(t, app, "/api/route/chart?from=X&to=Z")
	if empty.Code != http.StatusNotFound || !strings.Contains(empty.Body.String(), "No trains found between X and Z.") {
		t.Errorf("unexpected empty chart response %d %s", empty.Code, empty.Body.String())
	}
}

func TestNoRoute(t *testing.T) {
	if w := get(t, testApp(t), "/api/unknown"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRouter_KeepsGinMode(t *testing.T) {
	app := testApp(t)
	app.Config.Server.Mode = gin.DebugMode
	_ = app.Router()
	if gin.Mode() != gin.TestMode {
		t.Errorf("Router changed gin mode to %q", gin.Mode())
	}
}
