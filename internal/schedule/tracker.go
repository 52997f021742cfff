package schedule

import (
	"context"
	"sync"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/observability"
)

// SeatSource is the slice of the upstream client the tracker needs.
type SeatSource interface {
	AllocatedSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error)
}

// Snapshot is the last derived state for a tracked bus. AllocationError holds
// the user-visible fetch error, if any; the countdown is computed regardless
// because it only depends on the schedule and the wall clock.
type Snapshot struct {
	BusName         string    `json:"busName"`
	SelectedDate    string    `json:"selectedDate,omitempty"`
	TotalSeats      int       `json:"totalSeats"`
	AllocatedSeats  []string  `json:"allocatedSeats"`
	AvailableSeats  int       `json:"availableSeats"`
	Countdown       string    `json:"countdown"`
	AllocationError string    `json:"allocationError,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Tracker keeps the availability/countdown snapshot for one bus fresh,
// recomputing on a fixed interval until stopped. Every (bus, date) switch
// bumps a generation counter; a refresh that raced with the switch is
// discarded so a stale response can never overwrite newer state.
type Tracker struct {
	source   SeatSource
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	gen    uint64
	bus    domain.Bus
	date   string
	snap   Snapshot
	cancel context.CancelFunc
}

func NewTracker(source SeatSource, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Tracker{source: source, interval: interval, now: time.Now}
}

// Track switches the tracker to a bus/date pair and starts the refresh loop.
// Any previous loop is cancelled first.
func (t *Tracker) Track(ctx context.Context, bus domain.Bus, selectedDate string) {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	gen := t.gen
	t.bus = bus
	t.date = selectedDate
	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	go t.loop(loopCtx, gen, bus, selectedDate)
}

// Stop cancels the refresh loop. The last snapshot stays readable.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Snapshot returns the last stored derivation.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

func (t *Tracker) loop(ctx context.Context, gen uint64, bus domain.Bus, selectedDate string) {
	t.refresh(ctx, gen, bus, selectedDate)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.refresh(ctx, gen, bus, selectedDate)
		}
	}
}

// refresh fetches the allocation list, derives the snapshot, and stores it
// unless the tracker moved on to a newer generation meanwhile.
func (t *Tracker) refresh(ctx context.Context, gen uint64, bus domain.Bus, selectedDate string) {
	now := t.now()
	snap := Snapshot{
		BusName:      bus.BusName,
		SelectedDate: selectedDate,
		TotalSeats:   bus.TotalSeats,
		Countdown:    Countdown(bus.StartTime, now),
		UpdatedAt:    now,
	}

	orders, err := t.source.AllocatedSeats(ctx, bus.BusName, selectedDate)
	if err != nil {
		snap.AllocationError = "Failed to load allocated seats."
		snap.AllocatedSeats = []string{}
		snap.AvailableSeats = bus.TotalSeats
	} else {
		snap.AllocatedSeats = FlattenSeats(orders)
		snap.AvailableSeats = AvailableSeats(bus.TotalSeats, orders)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		// A newer Track call won the race; this result is stale.
		return
	}
	t.snap = snap
	observability.CountdownRefreshesTotal.Inc()
}
