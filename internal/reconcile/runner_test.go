package reconcile

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"github.com/ykanggit/goDaddy-API/internal/reconcile/mock_reconcile"
)

type testLogger struct {
	t     *testing.T
	warns []string
}

func (l *testLogger) Debug(s string) { l.t.Log(s) }
func (l *testLogger) Info(s string)  { l.t.Log(s) }
func (l *testLogger) Warn(s string) {
	l.t.Log(s)
	l.warns = append(l.warns, s)
}

const hostname = "4runner.oakridge.io"

var (
	currentIP   = netip.MustParseAddr("203.0.113.9")
	publishedIP = netip.MustParseAddr("203.0.113.5")
	timestamp   = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
)

type mocks struct {
	fetcher   *mock_reconcile.MockPublicIPFetcher
	published *mock_reconcile.MockPublishedIPResolver
	updater   *mock_reconcile.MockUpdater
	notifier  *mock_reconcile.MockNotifier
	logger    *testLogger
}

func newTestRunner(t *testing.T, ctrl *gomock.Controller, confirm bool) (*Runner, mocks) {
	t.Helper()
	m := mocks{
		fetcher:   mock_reconcile.NewMockPublicIPFetcher(ctrl),
		published: mock_reconcile.NewMockPublishedIPResolver(ctrl),
		updater:   mock_reconcile.NewMockUpdater(ctrl),
		notifier:  mock_reconcile.NewMockNotifier(ctrl),
		logger:    &testLogger{t: t},
	}
	settings := Settings{Hostname: hostname, Confirm: confirm}
	runner := NewRunner(settings, m.fetcher, m.published, m.updater, m.notifier,
		m.logger, func() time.Time { return timestamp })
	runner.newID = func() string { return "id" }
	return runner, m
}

func Test_Runner_Run_drifted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	runner, m := newTestRunner(t, ctrl, true)

	record := models.DNSRecord{Name: hostname, Type: "A", Value: currentIP, TTL: time.Hour}
	expectedEvent := models.Event{
		ID:        "id",
		Hostname:  hostname,
		OldValue:  publishedIP,
		NewValue:  currentIP,
		Timestamp: timestamp,
		Outcome:   models.OutcomeUpdated,
	}
	gomock.InOrder(
		m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil),
		m.published.EXPECT().PublishedIP(ctx, hostname).Return(publishedIP, true, nil),
		m.updater.EXPECT().UpsertA(ctx, hostname, currentIP).Return(record, nil).Times(1),
		m.updater.EXPECT().PublishedIP(ctx, hostname).Return(currentIP, true, nil),
		m.notifier.EXPECT().Notify(ctx, expectedEvent).Times(1),
	)

	event, err := runner.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, expectedEvent, event)
	assert.Empty(t, m.logger.warns)
}

func Test_Runner_Run_unchanged(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	runner, m := newTestRunner(t, ctrl, true)

	m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil)
	m.published.EXPECT().PublishedIP(ctx, hostname).Return(currentIP, true, nil)
	// no upsert and no notification expected

	event, err := runner.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.Event{
		ID:        "id",
		Hostname:  hostname,
		OldValue:  currentIP,
		NewValue:  currentIP,
		Timestamp: timestamp,
		Outcome:   models.OutcomeUnchanged,
	}, event)
}

func Test_Runner_Run_created(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	runner, m := newTestRunner(t, ctrl, false)

	record := models.DNSRecord{Name: hostname, Type: "A", Value: currentIP}
	m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil)
	m.published.EXPECT().PublishedIP(ctx, hostname).Return(netip.Addr{}, false, nil)
	m.updater.EXPECT().UpsertA(ctx, hostname, currentIP).Return(record, nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, event models.Event) {
		assert.False(t, event.OldValue.IsValid())
		assert.Equal(t, currentIP, event.NewValue)
	})

	event, err := runner.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, event.Outcome)
}

func Test_Runner_Run_failures(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")

	testCases := map[string]struct {
		setup      func(ctx context.Context, m mocks)
		errMessage string
	}{
		"fetch_public_ip": {
			setup: func(ctx context.Context, m mocks) {
				m.fetcher.EXPECT().IP4(ctx).Return(netip.Addr{}, errDummy)
			},
			errMessage: "fetching public IP address: dummy",
		},
		"resolve_published_ip": {
			setup: func(ctx context.Context, m mocks) {
				m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil)
				m.published.EXPECT().PublishedIP(ctx, hostname).Return(netip.Addr{}, false, errDummy)
			},
			errMessage: "resolving published IP address: dummy",
		},
		"upsert": {
			setup: func(ctx context.Context, m mocks) {
				m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil)
				m.published.EXPECT().PublishedIP(ctx, hostname).Return(publishedIP, true, nil)
				m.updater.EXPECT().UpsertA(ctx, hostname, currentIP).Return(models.DNSRecord{}, errDummy)
			},
			errMessage: "updating A record: dummy",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			runner, m := newTestRunner(t, ctrl, true)
			testCase.setup(ctx, m)

			event, err := runner.Run(ctx)

			require.ErrorIs(t, err, errDummy)
			assert.EqualError(t, err, testCase.errMessage)
			assert.Equal(t, models.OutcomeFailed, event.Outcome)
			assert.Equal(t, err, event.Err)
		})
	}
}

func Test_Runner_Run_confirmMismatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	runner, m := newTestRunner(t, ctrl, true)

	record := models.DNSRecord{Name: hostname, Type: "A", Value: currentIP}
	m.fetcher.EXPECT().IP4(ctx).Return(currentIP, nil)
	m.published.EXPECT().PublishedIP(ctx, hostname).Return(publishedIP, true, nil)
	m.updater.EXPECT().UpsertA(ctx, hostname, currentIP).Return(record, nil)
	m.updater.EXPECT().PublishedIP(ctx, hostname).Return(publishedIP, true, nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any())

	event, err := runner.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, event.Outcome)
	assert.Equal(t, []string{"A record of 4runner.oakridge.io is still 203.0.113.5 instead of 203.0.113.9"},
		m.logger.warns)
}

func Test_Runner_Apply(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	runner, m := newTestRunner(t, ctrl, false)

	record := models.DNSRecord{Name: hostname, Type: "A", Value: currentIP}
	m.published.EXPECT().PublishedIP(ctx, hostname).Return(currentIP, true, nil)
	m.updater.EXPECT().UpsertA(ctx, hostname, currentIP).Return(record, nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any())

	event, err := runner.Apply(ctx, currentIP)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, event.Outcome)
}
