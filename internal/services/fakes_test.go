package services

import (
	"context"
	"errors"

	"brtc-gateway/internal/domain"
)

// fakeAPI stands in for the upstream client; unset methods fail loudly.
type fakeAPI struct {
	listBuses      func(ctx context.Context) ([]domain.Bus, error)
	getBus         func(ctx context.Context, id string) (domain.Bus, error)
	listUsers      func(ctx context.Context) ([]domain.User, error)
	deleteUser     func(ctx context.Context, id string) (string, error)
	listOrders     func(ctx context.Context) ([]domain.Order, error)
	allocatedSeats func(ctx context.Context, busName, selectedDate string) ([]domain.Order, error)
	orderSeats     func(ctx context.Context, busName, selectedDate string) ([]domain.Order, error)
	deleteSeat     func(ctx context.Context, busName, seatID string) error
	clearSeats     func(ctx context.Context, busName string) error
	listRoutes     func(ctx context.Context) ([]domain.RoutePlan, error)
}

var errNotWired = errors.New("fakeAPI method not wired")

func (f *fakeAPI) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	if f.listBuses == nil {
		return nil, errNotWired
	}
	return f.listBuses(ctx)
}

func (f *fakeAPI) GetBus(ctx context.Context, id string) (domain.Bus, error) {
	if f.getBus == nil {
		return domain.Bus{}, errNotWired
	}
	return f.getBus(ctx, id)
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	if f.listUsers == nil {
		return nil, errNotWired
	}
	return f.listUsers(ctx)
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id string) (string, error) {
	if f.deleteUser == nil {
		return "", errNotWired
	}
	return f.deleteUser(ctx, id)
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.listOrders == nil {
		return nil, errNotWired
	}
	return f.listOrders(ctx)
}

func (f *fakeAPI) AllocatedSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error) {
	if f.allocatedSeats == nil {
		return nil, errNotWired
	}
	return f.allocatedSeats(ctx, busName, selectedDate)
}

func (f *fakeAPI) OrderSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error) {
	if f.orderSeats == nil {
		return nil, errNotWired
	}
	return f.orderSeats(ctx, busName, selectedDate)
}

func (f *fakeAPI) DeleteOrderSeat(ctx context.Context, busName, seatID string) error {
	if f.deleteSeat == nil {
		return errNotWired
	}
	return f.deleteSeat(ctx, busName, seatID)
}

func (f *fakeAPI) ClearAllocatedSeats(ctx context.Context, busName string) error {
	if f.clearSeats == nil {
		return errNotWired
	}
	return f.clearSeats(ctx, busName)
}

func (f *fakeAPI) ListRoutes(ctx context.Context) ([]domain.RoutePlan, error) {
	if f.listRoutes == nil {
		return nil, errNotWired
	}
	return f.listRoutes(ctx)
}
