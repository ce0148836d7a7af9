package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"stratosim/internal/engine/fleet"
	"stratosim/internal/engine/montecarlo"
	"stratosim/internal/engine/navigator"
	"stratosim/internal/engine/wind"
	"stratosim/internal/repository"
	"stratosim/internal/service/cache"
	"stratosim/internal/usecase"
	"stratosim/pkg/config"
	"stratosim/pkg/logger"
	"stratosim/pkg/metrics"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	lgr, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	cfg := &config.Config{}
	cfg.Simulation.MaxIterations = 100
	cfg.Simulation.MaxMissionDays = 30
	cfg.Simulation.MaxFleetPlatforms = 10
	cfg.Simulation.DefaultMinAltKm = 18
	cfg.Simulation.DefaultMaxAltKm = 25
	cfg.Cache.TTL.WindProfile = time.Minute
	cfg.Cache.TTL.Seasonal = time.Minute

	field := wind.New()
	keeper := navigator.New(field)
	sim := usecase.NewSimulationService(
		field, keeper, fleet.New(keeper), montecarlo.New(keeper),
		nil, nil, cache.NewTTLCache(), cfg,
		metrics.NewWithRegistry(prometheus.NewRegistry()), lgr,
	)
	missions := usecase.NewMissionPlanner(repository.NewMemoryPresetStore(), lgr)

	e := echo.New()
	NewSimulationHandler(lgr, sim, missions, nil).RegisterRoutes(e)
	return e
}

type apiEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response not an API envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, env
}

func TestWindProfileEndpoint(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/api/wind/profile?lat=40&lon=-100&month=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var profile []map[string]any
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if len(profile) != 8 {
		t.Fatalf("profile layers = %d, want 8", len(profile))
	}
}

func TestWindVectorRequiresMonth(t *testing.T) {
	e := newTestEcho(t)

	rec, _ := doRequest(t, e, http.MethodGet, "/api/wind/vector?lat=40&lon=-100", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimalAltitudeEmptyBandIs422(t *testing.T) {
	e := newTestEcho(t)

	rec, _ := doRequest(t, e, http.MethodGet,
		"/api/wind/optimal-altitude?lat=0&lon=0&target_heading_deg=90&month=6&min_alt_km=20.2&max_alt_km=20.8", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
}

func TestMonteCarloIterationLimit(t *testing.T) {
	e := newTestEcho(t)

	body := `{"lat":0,"lon":0,"aoi_radius_km":50,"mission_days":2,"month":6,"n_iterations":2000}`
	rec, _ := doRequest(t, e, http.MethodPost, "/api/montecarlo", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestPlatformCatalogEndpoint(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/api/platforms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var list struct {
		Rows  []map[string]any `json:"rows"`
		Total int64            `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 2 || len(list.Rows) != 2 {
		t.Fatalf("platforms total = %d rows = %d, want 2/2", list.Total, len(list.Rows))
	}
}

func TestRunLookupWithHistoryDisabled(t *testing.T) {
	e := newTestEcho(t)

	rec, _ := doRequest(t, e, http.MethodGet, "/api/runs/some-id", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503, body = %s", rec.Code, rec.Body.String())
	}

	// Listing stays a 200 with an empty result set.
	recList, _ := doRequest(t, e, http.MethodGet, "/api/runs", "")
	if recList.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", recList.Code)
	}
}

func TestMonteCarloJobsDisabled(t *testing.T) {
	e := newTestEcho(t)

	body := `{"lat":0,"lon":0,"aoi_radius_km":50,"mission_days":2,"month":6,"n_iterations":5}`
	rec, _ := doRequest(t, e, http.MethodPost, "/api/montecarlo/jobs", body)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
