package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/mapprovider"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/auth"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/broker"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/server"
	authUC "github.com/marcos-nsantos/location-tracker/internal/usecase/auth"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/health"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/history"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/session"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/testdata"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/tracking"
)

const (
	testJWTSecret = "test-secret-key-for-e2e-tests"
	testUsername  = "operator"
	testPassword  = "correct-horse-battery"
	apiBasePath   = "/api/v1"
)

var testHome = valueobject.NewCoordinate(37.2038, 127.0909)

type appOptions struct {
	auth    bool
	signals map[entity.Provider]health.Signal
}

type TestApp struct {
	Server     *httptest.Server
	Session    *session.Service
	Scenes     map[entity.Provider]*mapsdk.Scene
	BaseURL    string
	httpClient *http.Client
	stopLoop   context.CancelFunc
}

func setupTestApp(t *testing.T, opts appOptions) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loop := scheduler.NewLoop(logger)
	go loop.Run(loopCtx)

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewPrometheusMetrics(registry)
	require.NoError(t, err)

	signals := opts.signals
	if signals == nil {
		signals = map[entity.Provider]health.Signal{
			entity.ProviderKakao:  mapsdk.Available(),
			entity.ProviderGoogle: mapsdk.Available(),
		}
	}

	scenes := map[entity.Provider]*mapsdk.Scene{
		entity.ProviderKakao:  mapsdk.NewScene("kakao"),
		entity.ProviderGoogle: mapsdk.NewScene("google"),
	}
	adapterOpts := mapprovider.Options{ReadyPoll: 5 * time.Millisecond, ReadyTimeout: 200 * time.Millisecond}
	adapters := map[entity.Provider]mapprovider.Adapter{
		entity.ProviderKakao:  mapprovider.NewKakao(mapsdk.NewSDK(signals[entity.ProviderKakao], scenes[entity.ProviderKakao]), time.UTC, adapterOpts, logger),
		entity.ProviderGoogle: mapprovider.NewGoogle(mapsdk.NewSDK(signals[entity.ProviderGoogle], scenes[entity.ProviderGoogle]), adapterOpts, logger),
	}
	snapshotters := make(map[entity.Provider]session.Snapshotter, len(scenes))
	for p, s := range scenes {
		snapshotters[p] = s
	}

	feed := positioning.NewDeviceFeed(time.Now)
	store := history.NewStore(testHome, loop.Now(), time.UTC)

	// A long interval leaves the first request as the only one, so each test
	// controls exactly which fix is recorded.
	tracker := tracking.NewTracker(loop, feed, store, metrics, logger, tracking.Config{
		Interval:   time.Hour,
		Timeout:    5 * time.Second,
		MaximumAge: time.Minute,
	})
	monitor := health.NewMonitor(loop, signals, entity.PreferredProvider, metrics, logger, 20*time.Millisecond)

	svc := session.NewService(session.Deps{
		Executor:  loop,
		Store:     store,
		Tracker:   tracker,
		Monitor:   monitor,
		Adapters:  adapters,
		Scenes:    snapshotters,
		Generator: testdata.NewGenerator(testHome, rand.New(rand.NewPCG(7, 11))),
		Publisher: broker.Noop(),
		Metrics:   metrics,
		Logger:    logger,
	}, session.Config{Location: time.UTC})
	require.NoError(t, svc.Start(context.Background()))

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests
	hash, err := passwordHasher.Hash(testPassword)
	require.NoError(t, err)

	authSvc := authUC.NewService(authUC.Config{
		Enabled:      opts.auth,
		Username:     testUsername,
		PasswordHash: hash,
	}, jwtSvc, passwordHasher)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     handler.NewAuthHandler(authSvc),
		LocationHandler: handler.NewLocationHandler(svc),
		TrackingHandler: handler.NewTrackingHandler(svc),
		MapHandler:      handler.NewMapHandler(svc),
		PositionHandler: handler.NewPositionHandler(feed),
		AuthMiddleware:  middleware.NewAuthMiddleware(authSvc),
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AllowedOrigins:  []string{"*"},
		Logger:          logger,
		Environment:     "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:   ts,
		Session:  svc,
		Scenes:   scenes,
		BaseURL:  ts.URL,
		stopLoop: stopLoop,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Session.Stop(ctx); err != nil {
		t.Logf("failed to stop session: %v", err)
	}
	app.stopLoop()
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

// getJSON fetches path and decodes a 200 response into dest.
func (app *TestApp) getJSON(t *testing.T, path string, headers map[string]string, dest any) {
	t.Helper()
	resp, err := app.get(path, headers)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	parseResponse(t, resp, dest)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}
