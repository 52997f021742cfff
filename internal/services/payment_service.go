package services

import (
	"context"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/utils"
)

// PaymentAPI is the slice of the upstream client the payment-history view and
// its two destructive actions need.
type PaymentAPI interface {
	ListBuses(ctx context.Context) ([]domain.Bus, error)
	OrderSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error)
	DeleteOrderSeat(ctx context.Context, busName, seatID string) error
	ClearAllocatedSeats(ctx context.Context, busName string) error
}

// BusGroup is one rowspan group of the payment table: all orders sharing a
// bus name, in fetch order.
type BusGroup struct {
	BusName string         `json:"busName"`
	Orders  []domain.Order `json:"orders"`
}

// PaymentHistory is the per-bus payment view: the raw orders grouped for
// display plus the derived totals and the bus's configured capacity.
type PaymentHistory struct {
	BusName             string     `json:"busName"`
	SelectedDate        string     `json:"selectedDate,omitempty"`
	TotalSeats          int        `json:"totalSeats"`
	Groups              []BusGroup `json:"groups"`
	TotalAllocatedSeats int        `json:"totalAllocatedSeats"`
	TotalPrice          float64    `json:"totalPrice"`
}

type PaymentService struct {
	API       PaymentAPI
	RequestID string
	Now       func() time.Time
}

// History fetches the order-level seat allocations for one bus, optionally
// scoped to a DD/MM/YYYY day, and derives the display totals.
func (s PaymentService) History(ctx context.Context, busName, selectedDate string) (PaymentHistory, error) {
	busName = utils.TrimOrEmpty(busName)
	if busName == "" {
		return PaymentHistory{}, domain.ValidationError{Field: "busName", Msg: "bus name is required"}
	}
	selectedDate = utils.TrimOrEmpty(selectedDate)
	if selectedDate != "" {
		if err := s.validateDate(selectedDate); err != nil {
			return PaymentHistory{}, err
		}
	}

	out := PaymentHistory{BusName: busName, SelectedDate: selectedDate}

	buses, err := s.API.ListBuses(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "payments", "list_buses", err)
		return PaymentHistory{}, err
	}
	for _, b := range buses {
		if b.BusName == busName {
			out.TotalSeats = b.TotalSeats
			break
		}
	}

	orders, err := s.API.OrderSeats(ctx, busName, selectedDate)
	if err != nil {
		utils.LogError(s.RequestID, "payments", "order_seats", err)
		return PaymentHistory{}, err
	}

	out.Groups = groupByBusName(orders)
	for _, o := range orders {
		out.TotalAllocatedSeats += len(o.AllocatedSeat)
		out.TotalPrice += o.Price
	}
	return out, nil
}

// DeleteSeat removes one seat allocation after explicit confirmation, then
// re-fetches the history so the caller renders post-write state.
func (s PaymentService) DeleteSeat(ctx context.Context, busName, seatID, selectedDate string, confirm bool) (PaymentHistory, error) {
	if !confirm {
		return PaymentHistory{}, domain.ValidationError{Field: "confirm", Msg: "seat deletion requires confirmation"}
	}
	if utils.TrimOrEmpty(seatID) == "" {
		return PaymentHistory{}, domain.ValidationError{Field: "seatId", Msg: "seat id is required"}
	}

	if err := s.API.DeleteOrderSeat(ctx, busName, seatID); err != nil {
		utils.LogError(s.RequestID, "payments", "delete_seat", err)
		return PaymentHistory{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "delete_seat", "seat "+seatID+" removed from "+busName)
	return s.History(ctx, busName, selectedDate)
}

// ClearSeats wipes every allocation for a bus after explicit confirmation,
// then re-fetches the (now empty) history.
func (s PaymentService) ClearSeats(ctx context.Context, busName, selectedDate string, confirm bool) (PaymentHistory, error) {
	if !confirm {
		return PaymentHistory{}, domain.ValidationError{Field: "confirm", Msg: "clearing all seats requires confirmation"}
	}

	if err := s.API.ClearAllocatedSeats(ctx, busName); err != nil {
		utils.LogError(s.RequestID, "payments", "clear_seats", err)
		return PaymentHistory{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "clear_seats", "all seats cleared for "+busName)
	return s.History(ctx, busName, selectedDate)
}

// groupByBusName buckets orders by bus name, preserving both first-seen group
// order and order order within each group.
func groupByBusName(orders []domain.Order) []BusGroup {
	index := map[string]int{}
	groups := []BusGroup{}
	for _, o := range orders {
		i, ok := index[o.BusName]
		if !ok {
			i = len(groups)
			index[o.BusName] = i
			groups = append(groups, BusGroup{BusName: o.BusName})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}

func (s PaymentService) validateDate(selectedDate string) error {
	d, err := utils.ParseUIDate(selectedDate)
	if err != nil {
		return domain.ValidationError{Field: "selectedDate", Msg: "want DD/MM/YYYY", Err: err}
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if !utils.WithinBookingWindow(d, now, 15, 15) {
		return domain.ValidationError{Field: "selectedDate", Msg: "date outside the 15-day booking window"}
	}
	return nil
}
