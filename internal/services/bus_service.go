package services

import (
	"context"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/schedule"
	"brtc-gateway/internal/utils"
)

// BusAPI is the slice of the upstream client the public bus views need.
type BusAPI interface {
	ListBuses(ctx context.Context) ([]domain.Bus, error)
	GetBus(ctx context.Context, id string) (domain.Bus, error)
	AllocatedSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error)
	ListRoutes(ctx context.Context) ([]domain.RoutePlan, error)
}

// BusCard is one entry of the bus listing: the bus plus its derived
// availability and departure countdown. A failed seat fetch degrades to a
// per-card error; the countdown never depends on it.
type BusCard struct {
	domain.Bus
	AvailableSeats  int    `json:"availableSeats"`
	Countdown       string `json:"countdown"`
	AllocationError string `json:"allocationError,omitempty"`
}

// BusDetail is the single-service page: seats for the selected day, the fare
// tiers for the bus, and the default quoted price.
type BusDetail struct {
	domain.Bus
	SelectedDate   string             `json:"selectedDate"`
	AllocatedSeats []string           `json:"allocatedSeats"`
	AvailableSeats int                `json:"availableSeats"`
	Countdown      string             `json:"countdown"`
	Routes         []domain.RouteFare `json:"routes"`
	SelectedRoute  string             `json:"selectedRoute,omitempty"`
	TicketPrice    float64            `json:"ticketPrice"`
}

type BusService struct {
	API       BusAPI
	RequestID string
	Now       func() time.Time
}

func (s BusService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List renders the bus cards. Cards fail in isolation: one bus's broken seat
// fetch must not take down the listing.
func (s BusService) List(ctx context.Context) ([]BusCard, error) {
	buses, err := s.API.ListBuses(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "buses", "list", err)
		return nil, err
	}

	now := s.now()
	cards := make([]BusCard, 0, len(buses))
	for _, b := range buses {
		card := BusCard{Bus: b, Countdown: schedule.Countdown(b.StartTime, now)}
		orders, err := s.API.AllocatedSeats(ctx, b.BusName, "")
		if err != nil {
			utils.LogError(s.RequestID, "buses", "allocated_seats", err)
			card.AllocationError = "Failed to load allocated seats."
			card.AvailableSeats = b.TotalSeats
		} else {
			card.AvailableSeats = schedule.AvailableSeats(b.TotalSeats, orders)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Detail renders one bus with date-scoped seats and its fare plan. An empty
// selectedDate defaults to today; explicit dates must sit inside the forward
// booking window.
func (s BusService) Detail(ctx context.Context, id, selectedDate string) (BusDetail, error) {
	selectedDate = utils.TrimOrEmpty(selectedDate)
	now := s.now()
	if selectedDate == "" {
		selectedDate = utils.FormatUIDate(now)
	} else {
		d, err := utils.ParseUIDate(selectedDate)
		if err != nil {
			return BusDetail{}, domain.ValidationError{Field: "selectedDate", Msg: "want DD/MM/YYYY", Err: err}
		}
		if !utils.WithinBookingWindow(d, now, 0, 15) {
			return BusDetail{}, domain.ValidationError{Field: "selectedDate", Msg: "date outside the 15-day booking window"}
		}
	}

	bus, err := s.API.GetBus(ctx, id)
	if err != nil {
		utils.LogError(s.RequestID, "buses", "get", err)
		return BusDetail{}, err
	}

	out := BusDetail{
		Bus:          bus,
		SelectedDate: selectedDate,
		Countdown:    schedule.Countdown(bus.StartTime, now),
	}

	orders, err := s.API.AllocatedSeats(ctx, bus.BusName, selectedDate)
	if err != nil {
		utils.LogError(s.RequestID, "buses", "allocated_seats", err)
		return BusDetail{}, err
	}
	out.AllocatedSeats = schedule.FlattenSeats(orders)
	out.AvailableSeats = schedule.AvailableSeats(bus.TotalSeats, orders)

	plans, err := s.API.ListRoutes(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "buses", "list_routes", err)
		return BusDetail{}, err
	}
	out.Routes = []domain.RouteFare{}
	for _, p := range plans {
		if p.BusName == bus.BusName && len(p.Routes) > 0 {
			out.Routes = p.Routes
			break
		}
	}
	if len(out.Routes) > 0 {
		// Default quote is the first configured fare tier.
		out.SelectedRoute = out.Routes[0].RouteName
		out.TicketPrice = out.Routes[0].Price
	}
	return out, nil
}
