package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/health"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func (app *TestApp) waitForMap(t *testing.T, provider string) response.MapResponse {
	t.Helper()

	var view response.MapResponse
	require.Eventually(t, func() bool {
		view = response.MapResponse{}
		app.getJSON(t, "/map", nil, &view)
		return view.Provider == provider && view.State == "ready"
	}, waitFor, tick, "map never became ready on %s", provider)
	return view
}

func TestE2E_Tracker_PositionToMap(t *testing.T) {
	app := setupTestApp(t, appOptions{})
	defer app.cleanup(t)

	t.Run("complete tracking flow", func(t *testing.T) {
		// 1. The preferred provider comes up first
		view := app.waitForMap(t, "google")
		require.NotNil(t, view.Scene)
		assert.True(t, view.ShowPath)

		// 2. The device reports a fix
		resp, err := app.post("/positions", map[string]any{
			"latitude":  37.2101,
			"longitude": 127.1012,
			"accuracy":  8.5,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()

		// 3. The tracker records it
		require.Eventually(t, func() bool {
			var state response.TrackingResponse
			app.getJSON(t, "/tracking", nil, &state)
			return state.SampleCount == 1
		}, waitFor, tick)

		var current response.CurrentLocationResponse
		app.getJSON(t, "/location/current", nil, &current)
		assert.InDelta(t, 37.2101, current.Latitude, 1e-9)
		assert.InDelta(t, 127.1012, current.Longitude, 1e-9)

		// 4. The marker follows it
		require.Eventually(t, func() bool {
			var view response.MapResponse
			app.getJSON(t, "/map", nil, &view)
			if view.Scene == nil || len(view.Scene.Markers) != 1 {
				return false
			}
			return view.Scene.Markers[0].Position == response.CoordinateResponse{Latitude: 37.2101, Longitude: 127.1012}
		}, waitFor, tick)
	})

	t.Run("test data fills history and path", func(t *testing.T) {
		resp, err := app.post("/testdata", nil, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var generated response.TestDataResponse
		parseResponse(t, resp, &generated)
		assert.Equal(t, 20, generated.Generated)
		assert.Len(t, generated.Samples, 20)

		var page response.HistoryResponse
		app.getJSON(t, "/location/history?page=2&per_page=5", nil, &page)
		assert.Len(t, page.Samples, 5)
		assert.Equal(t, 20, page.Pagination.TotalItems)
		assert.Equal(t, 4, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
		assert.Equal(t, generated.Samples[5], page.Samples[0])

		var summary response.SummaryResponse
		app.getJSON(t, "/location/summary", nil, &summary)
		assert.Equal(t, 20, summary.SampleCount)
		assert.Greater(t, summary.TotalDistanceKm, 0.0)
		assert.Equal(t, "UTC", summary.TimeZone)

		var view response.MapResponse
		app.getJSON(t, "/map", nil, &view)
		require.NotNil(t, view.Scene)
		require.NotEmpty(t, view.Scene.Polylines)
		assert.Len(t, view.Scene.Polylines[0].Path, 20)
		assert.True(t, view.Scene.Polylines[0].Visible)
	})

	t.Run("hiding the path keeps the overlay", func(t *testing.T) {
		resp, err := app.put("/map/path", map[string]bool{"visible": false}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		var view response.MapResponse
		app.getJSON(t, "/map", nil, &view)
		assert.False(t, view.ShowPath)
		require.NotNil(t, view.Scene)
		require.NotEmpty(t, view.Scene.Polylines)
		for _, line := range view.Scene.Polylines {
			assert.False(t, line.Visible)
		}
	})

	t.Run("switching to kakao", func(t *testing.T) {
		resp, err := app.put("/providers/selected", map[string]string{"provider": "kakao"}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var state response.ProvidersResponse
		parseResponse(t, resp, &state)
		assert.Equal(t, "kakao", state.Selected)

		view := app.waitForMap(t, "kakao")
		require.NotNil(t, view.Scene)
		assert.Len(t, view.Scene.Markers, 1)
		assert.False(t, view.ShowPath)
	})

	t.Run("unknown provider", func(t *testing.T) {
		resp, err := app.put("/providers/selected", map[string]string{"provider": "naver"}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("tracking can be paused", func(t *testing.T) {
		resp, err := app.put("/tracking", map[string]bool{"tracking": false}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var state response.TrackingResponse
		parseResponse(t, resp, &state)
		assert.False(t, state.Tracking)
		assert.Equal(t, 1, state.SampleCount)
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		resp, err := app.httpClient.Get(app.BaseURL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestE2E_Tracker_Failover(t *testing.T) {
	app := setupTestApp(t, appOptions{
		signals: map[entity.Provider]health.Signal{
			entity.ProviderKakao:  mapsdk.Available(),
			entity.ProviderGoogle: mapsdk.Unavailable(),
		},
	})
	defer app.cleanup(t)

	t.Run("falls back to kakao when google fails to load", func(t *testing.T) {
		app.waitForMap(t, "kakao")

		var state response.ProvidersResponse
		app.getJSON(t, "/providers", nil, &state)
		assert.Equal(t, "kakao", state.Selected)
		assert.Equal(t, "error", state.Statuses["google"])
		assert.Equal(t, "available", state.Statuses["kakao"])
		assert.True(t, state.Healthy)
	})

	t.Run("selecting the failed provider snaps back", func(t *testing.T) {
		resp, err := app.put("/providers/selected", map[string]string{"provider": "google"}, nil)
		require.NoError(t, err)
		resp.Body.Close()

		require.Eventually(t, func() bool {
			var state response.ProvidersResponse
			app.getJSON(t, "/providers", nil, &state)
			return state.Selected == "kakao"
		}, waitFor, tick)
	})
}

func TestE2E_Position_Validation(t *testing.T) {
	app := setupTestApp(t, appOptions{})
	defer app.cleanup(t)

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		resp, err := app.post("/positions", map[string]any{"latitude": 120.0, "longitude": 10.0}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("accepts a reported failure", func(t *testing.T) {
		resp, err := app.post("/positions", map[string]any{"error": "timeout"}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()
	})
}
