// Package reconcile keeps the A record of a hostname in line with the
// public IPv4 address of the machine.
package reconcile

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/ykanggit/goDaddy-API/internal/models"
)

type Settings struct {
	Hostname string
	// Confirm reads the record back after an update.
	Confirm bool
}

// Runner runs a single reconciliation attempt at a time.
type Runner struct {
	settings  Settings
	fetcher   PublicIPFetcher
	published PublishedIPResolver
	updater   Updater
	notifier  Notifier
	logger    Logger
	timeNow   func() time.Time
	newID     func() string
}

// NewRunner creates a runner. The published IP resolver can be the
// updater itself, or a DNS resolver.
func NewRunner(settings Settings, fetcher PublicIPFetcher, published PublishedIPResolver,
	updater Updater, notifier Notifier, logger Logger, timeNow func() time.Time) *Runner {
	return &Runner{
		settings:  settings,
		fetcher:   fetcher,
		published: published,
		updater:   updater,
		notifier:  notifier,
		logger:    logger,
		timeNow:   timeNow,
		newID:     uuid.NewString,
	}
}

func (r *Runner) setState(event *models.Event, state State) {
	r.logger.Debug(fmt.Sprintf("reconciliation %s of %s: %s", event.ID, event.Hostname, state))
}

// Run fetches the current public IPv4 address, compares it with the
// published one and updates the record if they differ. A notification
// is sent only if the record was updated. The returned error is nil
// unless the outcome of the event is failed.
func (r *Runner) Run(ctx context.Context) (event models.Event, err error) {
	event = r.newEvent()
	r.setState(&event, StateResolving)

	current, err := r.fetcher.IP4(ctx)
	if err != nil {
		return r.fail(event, fmt.Errorf("fetching public IP address: %w", err))
	}
	event.NewValue = current

	return r.reconcile(ctx, event, false)
}

// Apply sets the A record of the hostname to the given IP address,
// even if it is already published, and reads it back.
func (r *Runner) Apply(ctx context.Context, ip netip.Addr) (event models.Event, err error) {
	event = r.newEvent()
	r.setState(&event, StateResolving)
	event.NewValue = ip
	return r.reconcile(ctx, event, true)
}

func (r *Runner) newEvent() models.Event {
	event := models.Event{
		ID:       r.newID(),
		Hostname: r.settings.Hostname,
	}
	r.setState(&event, StateStart)
	return event
}

func (r *Runner) reconcile(ctx context.Context, event models.Event, force bool) (
	models.Event, error) {
	published, found, err := r.published.PublishedIP(ctx, event.Hostname)
	if err != nil {
		return r.fail(event, fmt.Errorf("resolving published IP address: %w", err))
	}
	if found {
		event.OldValue = published
	}

	r.setState(&event, StateComparing)
	if !force && !HasDrifted(event.NewValue, event.OldValue) {
		r.setState(&event, StateNoop)
		event.Outcome = models.OutcomeUnchanged
		event.Timestamp = r.timeNow()
		r.logger.Info(event.String())
		r.setState(&event, StateNotifying)
		r.setState(&event, StateDone)
		return event, nil
	}

	r.setState(&event, StateUpdating)
	record, err := r.updater.UpsertA(ctx, event.Hostname, event.NewValue)
	if err != nil {
		return r.fail(event, fmt.Errorf("updating A record: %w", err))
	}
	event.Outcome = models.OutcomeUpdated
	event.Timestamp = r.timeNow()
	r.logger.Info(event.String())

	if r.settings.Confirm {
		r.setState(&event, StateConfirming)
		r.confirm(ctx, record)
	}

	r.setState(&event, StateNotifying)
	r.notifier.Notify(ctx, event)
	r.setState(&event, StateDone)
	return event, nil
}

// confirm reads the record back and only logs the result, since
// the provider may take time to serve the new value.
func (r *Runner) confirm(ctx context.Context, record models.DNSRecord) {
	ip, found, err := r.updater.PublishedIP(ctx, record.Name)
	switch {
	case err != nil:
		r.logger.Warn("reading back A record of " + record.Name + ": " + err.Error())
	case !found:
		r.logger.Warn("A record of " + record.Name + " is not yet published")
	case ip != record.Value:
		r.logger.Warn(fmt.Sprintf("A record of %s is still %s instead of %s",
			record.Name, ip, record.Value))
	default:
		r.logger.Info(fmt.Sprintf("A record of %s confirmed as %s", record.Name, ip))
	}
}

func (r *Runner) fail(event models.Event, err error) (models.Event, error) {
	r.setState(&event, StateFailed)
	event.Outcome = models.OutcomeFailed
	event.Timestamp = r.timeNow()
	event.Err = err
	return event, err
}
