package schedule

import "brtc-gateway/internal/domain"

// FlattenSeats concatenates every order's allocated seat labels into one list,
// order preserved. Duplicates across orders are kept; occupancy counting
// follows the upstream data as-is.
func FlattenSeats(orders []domain.Order) []string {
	out := []string{}
	for _, o := range orders {
		out = append(out, o.AllocatedSeat...)
	}
	return out
}

// AvailableSeats is capacity minus the flattened allocation count. The result
// is deliberately not clamped: an over-allocated bus reports a negative count
// and callers display it as-is.
func AvailableSeats(totalSeats int, orders []domain.Order) int {
	return totalSeats - len(FlattenSeats(orders))
}
