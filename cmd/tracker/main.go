package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/geocoding"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/mapprovider"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/auth"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/broker"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/config"
	geocodingInfra "github.com/marcos-nsantos/location-tracker/internal/infrastructure/geocoding"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	positioningInfra "github.com/marcos-nsantos/location-tracker/internal/infrastructure/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/server"
	authUC "github.com/marcos-nsantos/location-tracker/internal/usecase/auth"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/health"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/history"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/session"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/testdata"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/tracking"
)

//	@title						Location Tracker API
//	@version					1.0
//	@description				Tracks the device position, keeps today's history and renders it on a Kakao or Google map with automatic failover.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Tracking.Location()
	if err != nil {
		logger.Fatal("invalid time zone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The loop outlives ctx so the session can be stopped on it during shutdown.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	loop := scheduler.NewLoop(logger)
	go loop.Run(loopCtx)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewPrometheusMetrics(registry)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}

	// Map SDKs
	sdkURLs := map[entity.Provider]string{
		entity.ProviderKakao:  withQuery(cfg.Providers.KakaoSDKURL, "appkey", cfg.Providers.KakaoAppKey),
		entity.ProviderGoogle: withQuery(cfg.Providers.GoogleSDKURL, "key", cfg.Providers.GoogleAPIKey),
	}
	signals := make(map[entity.Provider]health.Signal, len(entity.Providers))
	sdks := make(map[entity.Provider]*mapsdk.SDK, len(entity.Providers))
	scenes := make(map[entity.Provider]session.Snapshotter, len(entity.Providers))
	for _, p := range entity.Providers {
		var sig mapsdk.Signal = mapsdk.Available()
		if u := sdkURLs[p]; u != "" {
			loader := mapsdk.NewLoader(mapsdk.LoaderConfig{
				Name:         p.String(),
				URL:          u,
				Retries:      cfg.Providers.LoadRetries,
				RetryDelay:   cfg.Providers.LoadRetryDelay,
				RecheckAfter: cfg.Providers.RecheckAfter,
			}, httpClient, logger)
			go loader.Run(ctx)
			sig = loader
		}
		scene := mapsdk.NewScene(p.String())
		signals[p] = sig
		sdks[p] = mapsdk.NewSDK(sig, scene)
		scenes[p] = scene
	}

	adapterOpts := mapprovider.Options{
		ReadyPoll:    cfg.Providers.ReadyPoll,
		ReadyTimeout: cfg.Providers.ReadyTimeout,
	}
	adapters := map[entity.Provider]mapprovider.Adapter{
		entity.ProviderKakao:  mapprovider.NewKakao(sdks[entity.ProviderKakao], loc, adapterOpts, logger),
		entity.ProviderGoogle: mapprovider.NewGoogle(sdks[entity.ProviderGoogle], adapterOpts, logger),
	}

	// Positioning
	var (
		source positioning.Source
		feed   handler.PositionFeed
	)
	switch cfg.Positioning.Source {
	case "google":
		client, err := positioningInfra.NewGoogleClient(cfg.Providers.GoogleAPIKey)
		if err != nil {
			logger.Fatal("failed to create geolocation client", zap.Error(err))
		}
		source = positioningInfra.NewGoogleGeolocation(client, cfg.Positioning.ConsiderIP, time.Now)
	default:
		deviceFeed := positioningInfra.NewDeviceFeed(time.Now)
		source, feed = deviceFeed, deviceFeed
	}

	// Geocoding
	var geocoder geocoding.ReverseGeocoder
	if cfg.Geocoding.Enabled {
		switch cfg.Geocoding.Source {
		case "google":
			client, err := positioningInfra.NewGoogleClient(cfg.Providers.GoogleAPIKey)
			if err != nil {
				logger.Fatal("failed to create geocoding client", zap.Error(err))
			}
			geocoder = geocodingInfra.NewGoogle(client, cfg.Geocoding.Language)
		default:
			geocoder = geocodingInfra.NewKakao(cfg.Geocoding.KakaoBaseURL, cfg.Geocoding.KakaoRESTKey, httpClient)
		}
	}

	// Publisher
	pub := broker.Noop()
	if cfg.MQTT.Enabled {
		mqttPub, err := broker.Connect(ctx, broker.Config{
			Broker:      cfg.MQTT.Broker,
			Port:        cfg.MQTT.Port,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    cfg.MQTT.Password,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			QoS:         cfg.MQTT.QoS,
			Retain:      cfg.MQTT.Retain,
		}, logger)
		if err != nil {
			logger.Warn("mqtt unavailable, events will not be published", zap.Error(err))
		} else {
			pub = mqttPub
		}
	}
	defer pub.Close()

	// Use cases
	home := valueobject.NewCoordinate(cfg.Tracking.HomeLat, cfg.Tracking.HomeLng)
	initial, err := entity.ParseProvider(cfg.Providers.Initial)
	if err != nil {
		logger.Fatal("invalid initial provider", zap.Error(err))
	}

	store := history.NewStore(home, loop.Now(), loc)
	tracker := tracking.NewTracker(loop, source, store, metrics, logger, tracking.Config{
		Interval:   cfg.Tracking.Interval,
		Timeout:    cfg.Tracking.Timeout,
		MaximumAge: cfg.Tracking.MaximumAge,
	})
	monitor := health.NewMonitor(loop, signals, initial, metrics, logger, cfg.Providers.PollInterval)

	sessionSvc := session.NewService(session.Deps{
		Executor:  loop,
		Store:     store,
		Tracker:   tracker,
		Monitor:   monitor,
		Adapters:  adapters,
		Scenes:    scenes,
		Geocoder:  geocoder,
		Generator: testdata.NewGenerator(home, nil),
		Publisher: pub,
		Metrics:   metrics,
		Logger:    logger,
	}, session.Config{
		Location:         loc,
		RolloverInterval: cfg.Tracking.RolloverInterval,
		GeocodeTimeout:   cfg.Geocoding.Timeout,
	})
	if err := sessionSvc.Start(ctx); err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)
	authSvc := authUC.NewService(authUC.Config{
		Enabled:      cfg.Auth.Enabled,
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
	}, jwtSvc, passwordHasher)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	locationHandler := handler.NewLocationHandler(sessionSvc)
	trackingHandler := handler.NewTrackingHandler(sessionSvc)
	mapHandler := handler.NewMapHandler(sessionSvc)
	positionHandler := handler.NewPositionHandler(feed)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     authHandler,
		LocationHandler: locationHandler,
		TrackingHandler: trackingHandler,
		MapHandler:      mapHandler,
		PositionHandler: positionHandler,
		AuthMiddleware:  authMiddleware,
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	if err := sessionSvc.Stop(shutdownCtx); err != nil {
		logger.Error("session stop error", zap.Error(err))
	}

	logger.Info("server stopped")
}

// withQuery appends the provider key to an SDK script URL. An empty raw URL
// stays empty.
func withQuery(raw, key, value string) string {
	if raw == "" || value == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
