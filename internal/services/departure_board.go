package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/schedule"
	"brtc-gateway/internal/utils"
)

// DepartureBoard keeps one availability/countdown tracker per bus running for
// the lifetime of the process, so the departures view always reads a snapshot
// no older than the refresh interval.
type DepartureBoard struct {
	API      BusAPI
	Interval time.Duration

	mu       sync.Mutex
	base     context.Context
	trackers map[string]*schedule.Tracker
	buses    map[string]domain.Bus
}

// Start lists the buses and begins tracking each one, date-unscoped. ctx is
// the board's lifetime: trackers started here and by later Watch calls run
// under it, not under any request that happens to re-scope them.
func (b *DepartureBoard) Start(ctx context.Context) error {
	buses, err := b.API.ListBuses(ctx)
	if err != nil {
		utils.LogError("", "departures", "start", err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = ctx
	b.trackers = make(map[string]*schedule.Tracker, len(buses))
	b.buses = make(map[string]domain.Bus, len(buses))
	for _, bus := range buses {
		tr := schedule.NewTracker(b.API, b.Interval)
		tr.Track(ctx, bus, "")
		b.trackers[bus.ID] = tr
		b.buses[bus.ID] = bus
	}
	utils.LogEvent("", "departures", "start", "tracking departures")
	return nil
}

// Watch re-scopes one bus's tracker to a selected day. The tracker's
// generation counter guarantees a refresh still in flight for the previous
// scope cannot overwrite the new one. ctx only bounds the call itself; the
// re-scoped refresh loop runs under the board's lifetime so it keeps ticking
// after the triggering request ends.
func (b *DepartureBoard) Watch(ctx context.Context, busID, selectedDate string) error {
	b.mu.Lock()
	tr, ok := b.trackers[busID]
	bus := b.buses[busID]
	base := b.base
	b.mu.Unlock()
	if !ok {
		return domain.NotFoundError{Resource: "bus"}
	}
	if selectedDate != "" {
		if _, err := utils.ParseUIDate(selectedDate); err != nil {
			return domain.ValidationError{Field: "selectedDate", Msg: "want DD/MM/YYYY", Err: err}
		}
	}
	if base == nil {
		base = context.Background()
	}
	tr.Track(base, bus, selectedDate)
	return nil
}

// Snapshots returns the latest derivation per bus, sorted by bus name.
func (b *DepartureBoard) Snapshots() []schedule.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]schedule.Snapshot, 0, len(b.trackers))
	for _, tr := range b.trackers {
		out = append(out, tr.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BusName < out[j].BusName })
	return out
}

// Stop tears down every tracker.
func (b *DepartureBoard) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, tr := range b.trackers {
		tr.Stop()
	}
}
