package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parts-pile/car-sales/config"
	"github.com/parts-pile/car-sales/dataset"
	h "github.com/parts-pile/car-sales/handlers"
)

const vehiclesCSV = `model,price,odometer,type
Toyota Camry,20000,30000,sedan
toyota corolla,15000,,sedan
Honda Civic,18000,40000,sedan
`

func setupApp(t *testing.T) (*fiber.App, *dataset.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vehicles.csv")
	require.NoError(t, os.WriteFile(path, []byte(vehiclesCSV), 0o644))

	store, err := dataset.NewStore(nil, 0)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	_, err = store.Get(path)
	require.NoError(t, err)

	h.Init(store, path)
	cfg := &config.Config{
		DataSource:   path,
		Port:         "0",
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		RateLimitMax: 1000,
		RateLimitExp: time.Minute,
	}
	return New(cfg), store, path
}

func get(t *testing.T, app *fiber.App, target string, headers ...string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestDashboardPage(t *testing.T) {
	app, _, _ := setupApp(t)

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
		excludes []string
	}{
		{
			name:     "default selection",
			target:   "/",
			status:   fiber.StatusOK,
			contains: []string{"Car Sales Analytics Webapp", `<option value="toyota" selected>`, "$17,500", "30,000", "/chart/histogram.svg?brand=toyota"},
			excludes: []string{"<table"},
		},
		{
			name:     "type not offered",
			target:   "/?brand=honda&type=SUV",
			status:   fiber.StatusBadRequest,
			contains: []string{"unknown vehicle type"},
		},
		{
			name:     "brand is case insensitive",
			target:   "/?brand=Honda",
			status:   fiber.StatusOK,
			contains: []string{"$18,000", "40,000"},
		},
		{
			name:     "unknown brand",
			target:   "/?brand=tesla",
			status:   fiber.StatusBadRequest,
			contains: []string{"Error 400", `unknown brand &#34;tesla&#34;`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, app, tt.target)
			assert.Equal(t, tt.status, resp.StatusCode)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestDashboardPartial(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, body := get(t, app, "/dashboard?brand=toyota&type=All&submitted=1&dataset=on")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="dashboard"`)
	assert.Contains(t, body, "<table")
	assert.Contains(t, body, "toyota corolla")
	assert.NotContains(t, body, "/chart/")
	assert.NotContains(t, body, "<html")

	resp, body = get(t, app, "/dashboard?brand=tesla")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "unknown brand")
}

func TestChartEndpoints(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, body := get(t, app, "/chart/histogram.svg?brand=toyota")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "Distribution of Vehicle Prices — Toyota")

	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)
	resp, _ = get(t, app, "/chart/histogram.svg?brand=toyota", fiber.HeaderIfNoneMatch, etag)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	resp, body = get(t, app, "/chart/scatter.svg?brand=toyota&type=sedan")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Price vs Odometer — Toyota")
	assert.NotEqual(t, etag, resp.Header.Get(fiber.HeaderETag))
}

func TestChartEndpointEmptyView(t *testing.T) {
	app, _, path := setupApp(t)

	csv := vehiclesCSV + "Kia Soul,,12000,hatchback\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/dataset-cache/clear", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := get(t, app, "/chart/histogram.svg?brand=kia")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "so the histogram can&#39;t be displayed")

	resp, _ = get(t, app, "/chart/scatter.svg?brand=kia")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = get(t, app, "/?brand=kia&type=hatchback")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No rows with price available for this selection")
	assert.Contains(t, body, "No rows with odometer available for this selection")
}

func TestAPI(t *testing.T) {
	app, _, _ := setupApp(t)

	t.Run("brands", func(t *testing.T) {
		resp, body := get(t, app, "/api/brands")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"brands":["honda","toyota"],"default":"toyota"}`, body)
	})

	t.Run("types", func(t *testing.T) {
		resp, body := get(t, app, "/api/types")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"types":["All","sedan"]}`, body)
	})

	t.Run("summary", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary?brand=toyota")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{
			"selection": {"brand": "toyota", "type": "All"},
			"summary": {
				"listing_count": 2,
				"median_price": {"value": 17500, "defined": true},
				"median_odometer": {"value": 30000, "defined": true}
			},
			"notices": []
		}`, body)
	})

	t.Run("scatter", func(t *testing.T) {
		resp, body := get(t, app, "/api/scatter?brand=toyota")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{
			"selection": {"brand": "toyota", "type": "All"},
			"hover_columns": ["type"],
			"points": [{"odometer": 30000, "price": 20000, "hover": {"type": "sedan"}}]
		}`, body)
	})

	t.Run("invalid selection", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary?brand=tesla")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var payload map[string]string
		require.NoError(t, json.Unmarshal([]byte(body), &payload))
		assert.Contains(t, payload["error"], "unknown brand")
	})
}

func TestAdminCacheClearReloads(t *testing.T) {
	app, store, _ := setupApp(t)
	require.Equal(t, 1, store.Loads())

	get(t, app, "/")
	assert.Equal(t, 1, store.Loads())

	resp, body := do(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/dataset-cache/clear", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Cache Statistics")

	get(t, app, "/")
	assert.Equal(t, 2, store.Loads())

	resp, body = get(t, app, "/admin/dataset-cache")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Admin Dashboard")
	assert.Contains(t, body, "Rows: </strong>3")
}

func TestDatasetWithoutBrands(t *testing.T) {
	app, _, path := setupApp(t)

	csv := "model,price,odometer,type\n,5000,1000,sedan\n   ,6000,2000,sedan\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/dataset-cache/clear", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := get(t, app, "/api/brands")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Contains(t, payload["error"], "no listings with a model")

	resp, body = get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No brands found")

	resp, body = get(t, app, "/dashboard?submitted=1", "HX-Request", "true")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="dashboard"`)
	assert.Contains(t, body, "no listings with a model")
}

func TestLoadErrorAfterClear(t *testing.T) {
	app, _, path := setupApp(t)

	resp, body := get(t, app, "/health")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"rows":3`)

	require.NoError(t, os.Remove(path))
	do(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/dataset-cache/clear", nil))

	resp, body = get(t, app, "/")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Error 500")

	resp, _ = get(t, app, "/health")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	app, _, _ := setupApp(t)
	get(t, app, "/?brand=toyota")

	resp, body := get(t, app, "/metrics")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "carsales_pipeline_runs_total")
	assert.Contains(t, body, "carsales_dataset_loads_total")
}
