package services

import (
	"context"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/utils"
)

// MastersPerPage is the fixed page size of the counter-master summary table.
const MastersPerPage = 15

// CounterAPI is the slice of the upstream client the counter summary needs.
type CounterAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// MasterSummary aggregates one counter master's paid orders.
type MasterSummary struct {
	Name            string  `json:"name"`
	Location        string  `json:"location,omitempty"`
	Buses           string  `json:"buses"`
	Seats           string  `json:"seats"`
	TotalSeatsSold  int     `json:"totalSeatsSold"`
	TotalPrice      float64 `json:"totalPrice"`
	HasTransactions bool    `json:"hasTransactions"`
}

// CounterSummaryPage is one page of master summaries plus paging info.
type CounterSummaryPage struct {
	SelectedDate string            `json:"selectedDate,omitempty"`
	Masters      []MasterSummary   `json:"masters"`
	Pagination   domain.Pagination `json:"pagination"`
}

type CounterService struct {
	API       CounterAPI
	RequestID string
	Now       func() time.Time
}

// Summary builds the per-counter-master sales table. Masters are approved
// role=="master" users; each aggregates their status=="paid" orders, scoped to
// selectedDate (DD/MM/YYYY) when one is given. Masters are paginated first,
// so totals are only computed for the visible page.
func (s CounterService) Summary(ctx context.Context, selectedDate string, page int) (CounterSummaryPage, error) {
	selectedDate = utils.TrimOrEmpty(selectedDate)
	if selectedDate != "" {
		if err := s.validateDate(selectedDate); err != nil {
			return CounterSummaryPage{}, err
		}
	}

	users, err := s.API.ListUsers(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "counters", "list_users", err)
		return CounterSummaryPage{}, err
	}
	masters := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleMaster && u.Status == domain.StatusApproved {
			masters = append(masters, u)
		}
	}

	orders, err := s.API.ListOrders(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "counters", "list_orders", err)
		return CounterSummaryPage{}, err
	}

	visible := paginate(masters, page, MastersPerPage)
	summaries := make([]MasterSummary, 0, len(visible))
	for _, m := range visible {
		matched := make([]domain.Order, 0)
		for _, o := range orders {
			if o.CounterMaster != m.Name || o.Status != domain.StatusPaid {
				continue
			}
			if selectedDate != "" && o.Date != selectedDate {
				continue
			}
			matched = append(matched, o)
		}
		summaries = append(summaries, masterSummary(m, matched))
	}

	utils.LogEvent(s.RequestID, "counters", "summary", "aggregated counter masters")
	return CounterSummaryPage{
		SelectedDate: selectedDate,
		Masters:      summaries,
		Pagination:   pageInfo(page, MastersPerPage, len(masters)),
	}, nil
}

func masterSummary(m domain.User, orders []domain.Order) MasterSummary {
	out := MasterSummary{Name: m.Name, Location: m.Location}
	if len(orders) == 0 {
		return out
	}

	busNames := make([]string, 0, len(orders))
	seatLists := make([][]string, 0, len(orders))
	for _, o := range orders {
		out.TotalSeatsSold += len(o.AllocatedSeat)
		out.TotalPrice += o.Price
		busNames = append(busNames, o.BusName)
		seatLists = append(seatLists, o.AllocatedSeat)
	}
	out.Buses = utils.UniqueJoin(busNames)
	out.Seats = utils.JoinSeatLists(seatLists)
	out.HasTransactions = true
	return out
}

func (s CounterService) validateDate(selectedDate string) error {
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
