package session_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/mapprovider"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/publisher"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
	"github.com/marcos-nsantos/location-tracker/internal/mocks"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/health"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/history"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/session"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/testdata"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/tracking"
)

var (
	home  = valueobject.NewCoordinate(37.2038, 127.0909)
	fixed = positioning.Fix{Lat: 37.21, Lng: 127.1, Accuracy: 6}
	start = time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
)

type loadingSignal struct{}

func (loadingSignal) Present() bool { return false }
func (loadingSignal) Failed() bool  { return false }

type fixture struct {
	sched    *scheduler.Manual
	store    *history.Store
	source   *mocks.MockSource
	geocoder *mocks.MockReverseGeocoder
	scenes   map[entity.Provider]*mapsdk.Scene
	adapters map[entity.Provider]mapprovider.Adapter
	signals  map[entity.Provider]health.Signal
	pub      publisher.Publisher
	initial  entity.Provider
}

func newFixture(ctrl *gomock.Controller) *fixture {
	return &fixture{
		sched:    scheduler.NewManual(start),
		store:    history.NewStore(home, start, time.UTC),
		source:   mocks.NewMockSource(ctrl),
		geocoder: mocks.NewMockReverseGeocoder(ctrl),
		scenes: map[entity.Provider]*mapsdk.Scene{
			entity.ProviderKakao:  mapsdk.NewScene("kakao"),
			entity.ProviderGoogle: mapsdk.NewScene("google"),
		},
		signals: map[entity.Provider]health.Signal{
			entity.ProviderKakao:  mapsdk.Available(),
			entity.ProviderGoogle: mapsdk.Available(),
		},
		pub:     publisher.Publisher(nil),
		initial: entity.ProviderGoogle,
	}
}

func (f *fixture) build() *session.Service {
	logger := zap.NewNop()
	metrics := observability.NoopMetrics()
	opts := mapprovider.Options{ReadyPoll: time.Millisecond, ReadyTimeout: 20 * time.Millisecond}

	adapters := map[entity.Provider]mapprovider.Adapter{
		entity.ProviderKakao:  mapprovider.NewKakao(mapsdk.NewSDK(f.signals[entity.ProviderKakao], f.scenes[entity.ProviderKakao]), time.UTC, opts, logger),
		entity.ProviderGoogle: mapprovider.NewGoogle(mapsdk.NewSDK(f.signals[entity.ProviderGoogle], f.scenes[entity.ProviderGoogle]), opts, logger),
	}
	for p, a := range f.adapters {
		adapters[p] = a
	}

	scenes := make(map[entity.Provider]session.Snapshotter, len(f.scenes))
	for p, s := range f.scenes {
		scenes[p] = s
	}

	return session.NewService(session.Deps{
		Executor:  f.sched,
		Store:     f.store,
		Tracker:   tracking.NewTracker(f.sched, f.source, f.store, metrics, logger, tracking.Config{}),
		Monitor:   health.NewMonitor(f.sched, f.signals, f.initial, metrics, logger, time.Minute),
		Adapters:  adapters,
		Scenes:    scenes,
		Geocoder:  f.geocoder,
		Generator: testdata.NewGenerator(home, rand.New(rand.NewPCG(1, 2))),
		Publisher: f.pub,
		Metrics:   metrics,
		Logger:    logger,
	}, session.Config{Location: time.UTC})
}

func (f *fixture) start(t *testing.T, svc *session.Service) {
	t.Helper()
	require.NoError(t, svc.Start(context.Background()))
	f.sched.Settle()
}

func fixedAddress(_ context.Context, coord valueobject.Coordinate) (string, error) {
	return "near " + coord.String(), nil
}

func TestService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the first fix on google", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		state, err := svc.Providers(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ProviderGoogle, state.Active)
		assert.Equal(t, session.MapReady, state.MapState)
		assert.True(t, state.Healthy)

		snap := f.scenes[entity.ProviderGoogle].Snapshot()
		require.True(t, snap.Ready)
		require.Len(t, snap.Markers, 1)
		assert.Equal(t, valueobject.NewCoordinate(fixed.Lat, fixed.Lng), snap.Markers[0].Position)
		assert.Empty(t, snap.Polylines)

		cur, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, fixed.Lat, cur.Lat)
		assert.Empty(t, cur.Address)
	})

	t.Run("preferred provider wins over kakao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.initial = entity.ProviderKakao
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		state, err := svc.Providers(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ProviderGoogle, state.Selected)
		assert.Equal(t, entity.ProviderGoogle, state.Active)
		assert.False(t, f.scenes[entity.ProviderKakao].Snapshot().Ready)
	})

	t.Run("starts on kakao and resolves address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.initial = entity.ProviderKakao
		f.signals[entity.ProviderGoogle] = mapsdk.Unavailable()
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		f.geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).DoAndReturn(fixedAddress).MinTimes(1)
		svc := f.build()
		f.start(t, svc)

		cur, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "near 37.210000,127.100000", cur.Address)

		view, err := svc.Map(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.ProviderKakao, view.Provider)
		require.NotNil(t, view.Scene)
		assert.Equal(t, mapprovider.KakaoZoomLevel, view.Scene.Zoom)
	})

	t.Run("fails over when the selected map cannot load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.signals[entity.ProviderGoogle] = loadingSignal{}
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		f.geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).DoAndReturn(fixedAddress).AnyTimes()
		svc := f.build()
		f.start(t, svc)

		state, err := svc.Providers(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusError, state.Statuses[entity.ProviderGoogle])
		assert.Equal(t, entity.ProviderKakao, state.Selected)
		assert.Equal(t, entity.ProviderKakao, state.Active)
		assert.Equal(t, session.MapReady, state.MapState)
		assert.True(t, f.scenes[entity.ProviderKakao].Snapshot().Ready)
	})

	t.Run("initialization error reports provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		google := mocks.NewMockAdapter(ctrl)
		google.EXPECT().Provider().Return(entity.ProviderGoogle).AnyTimes()
		google.EXPECT().Initialize(gomock.Any(), home).Return(nil, fmt.Errorf("creating map: %w", domain.ErrProviderUnavailable))
		f.adapters = map[entity.Provider]mapprovider.Adapter{entity.ProviderGoogle: google}
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ positioning.Options) (positioning.Fix, error) {
			<-ctx.Done()
			return positioning.Fix{}, ctx.Err()
		}).AnyTimes()
		f.geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).DoAndReturn(fixedAddress).AnyTimes()
		svc := f.build()

		require.NoError(t, svc.Start(context.Background()))
		_, err := svc.SetTracking(ctx, false)
		require.NoError(t, err)
		f.sched.Settle()

		state, err := svc.Providers(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusError, state.Statuses[entity.ProviderGoogle])
		assert.Equal(t, entity.ProviderKakao, state.Active)
	})

	t.Run("no provider available leaves the map unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.signals[entity.ProviderKakao] = mapsdk.Unavailable()
		f.signals[entity.ProviderGoogle] = mapsdk.Unavailable()
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		state, err := svc.Providers(ctx)
		require.NoError(t, err)
		assert.False(t, state.Healthy)
		assert.Equal(t, session.MapUnavailable, state.MapState)

		view, err := svc.Map(ctx)
		require.NoError(t, err)
		assert.Nil(t, view.Scene)
		assert.NotEmpty(t, view.Error)
	})
}

func TestService_SelectProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("kakao snaps back while google is available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		state, err := svc.SelectProvider(ctx, entity.ProviderKakao)
		require.NoError(t, err)
		f.sched.Settle()

		assert.Equal(t, entity.ProviderGoogle, state.Selected)
		assert.Equal(t, entity.ProviderGoogle, state.Active)
		assert.True(t, f.scenes[entity.ProviderGoogle].Snapshot().Ready)
	})

	t.Run("switches when the other provider is in error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.initial = entity.ProviderKakao
		f.signals[entity.ProviderGoogle] = mapsdk.Unavailable()
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		f.geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).DoAndReturn(fixedAddress).AnyTimes()
		svc := f.build()
		f.start(t, svc)

		state, err := svc.SelectProvider(ctx, entity.ProviderGoogle)
		require.NoError(t, err)
		f.sched.Settle()

		// google is in error, so the monitor keeps kakao
		assert.Equal(t, entity.ProviderKakao, state.Selected)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		_, err := svc.SelectProvider(ctx, entity.Provider("bing"))
		assert.ErrorIs(t, err, domain.ErrInvalidProvider)
	})
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("test data replaces history and draws the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		generated, err := svc.GenerateTestData(ctx)
		require.NoError(t, err)
		f.sched.Settle()
		require.Len(t, generated, testdata.SampleCount)

		page, info, err := svc.History(ctx, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, generated[5:10], page)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, testdata.SampleCount, info.TotalItems)

		snap := f.scenes[entity.ProviderGoogle].Snapshot()
		require.Len(t, snap.Polylines, 1)
		assert.Len(t, snap.Polylines[0].Path, testdata.SampleCount)
		assert.True(t, snap.Polylines[0].Visible)
		require.NotNil(t, snap.Bounds)

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, testdata.SampleCount, summary.SampleCount)
		assert.Greater(t, summary.TotalDistanceKm, 0.0)
	})

	t.Run("toggles path visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)
		_, err := svc.GenerateTestData(ctx)
		require.NoError(t, err)
		f.sched.Settle()

		require.NoError(t, svc.SetPathVisible(ctx, false))
		snap := f.scenes[entity.ProviderGoogle].Snapshot()
		require.Len(t, snap.Polylines, 1)
		assert.False(t, snap.Polylines[0].Visible)

		view, err := svc.Map(ctx)
		require.NoError(t, err)
		assert.False(t, view.ShowPath)

		require.NoError(t, svc.SetPathVisible(ctx, true))
		snap = f.scenes[entity.ProviderGoogle].Snapshot()
		require.Len(t, snap.Polylines, 1)
		assert.True(t, snap.Polylines[0].Visible)
	})

	t.Run("hidden path is drawn again when shown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		require.NoError(t, svc.SetPathVisible(ctx, false))
		_, err := svc.GenerateTestData(ctx)
		require.NoError(t, err)
		f.sched.Settle()
		assert.Empty(t, f.scenes[entity.ProviderGoogle].Snapshot().Polylines)

		require.NoError(t, svc.SetPathVisible(ctx, true))
		assert.Len(t, f.scenes[entity.ProviderGoogle].Snapshot().Polylines, 1)
	})

	t.Run("history is cleared after midnight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)
		_, err := svc.SetTracking(ctx, false)
		require.NoError(t, err)
		_, err = svc.GenerateTestData(ctx)
		require.NoError(t, err)
		f.sched.Settle()

		f.sched.Advance(5 * time.Hour)
		page, _, err := svc.History(ctx, 1, 50)
		require.NoError(t, err)
		assert.Len(t, page, testdata.SampleCount)

		f.sched.Advance(2 * time.Hour)
		f.sched.Settle()
		page, _, err = svc.History(ctx, 1, 50)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Empty(t, f.scenes[entity.ProviderGoogle].Snapshot().Polylines)
	})
}

func TestService_Tracking(t *testing.T) {
	ctx := context.Background()

	t.Run("stopping tracking halts sampling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil).Times(2)
		svc := f.build()
		f.start(t, svc)

		state, err := svc.SetTracking(ctx, false)
		require.NoError(t, err)
		assert.False(t, state.Tracking)
		assert.Equal(t, 1, state.SampleCount)
		require.NotNil(t, state.LastSample)
		assert.Equal(t, start, state.LastSample.Timestamp)

		f.sched.Advance(2 * time.Minute)
		f.sched.Settle()

		state, err = svc.SetTracking(ctx, true)
		require.NoError(t, err)
		f.sched.Settle()
		assert.True(t, state.Tracking)

		state, err = svc.Tracking(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, state.SampleCount)
	})
}

func TestService_Stop(t *testing.T) {
	ctx := context.Background()

	t.Run("tears down map and periodic tasks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)
		require.True(t, f.scenes[entity.ProviderGoogle].Snapshot().Ready)

		require.NoError(t, svc.Stop(ctx))

		assert.False(t, f.scenes[entity.ProviderGoogle].Snapshot().Ready)
		assert.Equal(t, 0, f.sched.Tasks())

		view, err := svc.Map(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.MapIdle, view.State)
		assert.Nil(t, view.Scene)
	})
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publisher.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e publisher.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingPublisher) Close() {}

func (r *recordingPublisher) topics() map[publisher.Topic]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[publisher.Topic]int)
	for _, e := range r.events {
		out[e.Topic]++
	}
	return out
}

func TestService_Publish(t *testing.T) {
	t.Run("announces provider and location changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pub := &recordingPublisher{}
		f := newFixture(ctrl)
		f.pub = pub
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		topics := pub.topics()
		assert.Positive(t, topics[publisher.TopicProvider])
		assert.Positive(t, topics[publisher.TopicLocation])
		assert.Positive(t, topics[publisher.TopicHistory])
	})

	t.Run("publish errors are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pub := mocks.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).AnyTimes()
		f := newFixture(ctrl)
		f.pub = pub
		f.source.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(fixed, nil)
		svc := f.build()
		f.start(t, svc)

		cur, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fixed.Lat, cur.Lat)
	})
}
