package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"brtc-gateway/internal/domain"
)

func counterFixture() *fakeAPI {
	users := []domain.User{
		{ID: "m1", Name: "Karim", Location: "Koyra", Role: domain.RoleMaster, Status: domain.StatusApproved},
		{ID: "m2", Name: "Rahim", Location: "Dhaka", Role: domain.RoleMaster, Status: domain.StatusApproved},
		{ID: "m3", Name: "Pending", Role: domain.RoleMaster, Status: "pending"},
		{ID: "u1", Name: "Member", Role: domain.RoleMember, Status: domain.StatusApproved},
	}
	orders := []domain.Order{
		{ID: "o1", BusName: "Dhaka-01", AllocatedSeat: []string{"A1", "A2"}, Price: 1000, CounterMaster: "Karim", Status: domain.StatusPaid, Date: "05/03/2025"},
		{ID: "o2", BusName: "Dhaka-02", AllocatedSeat: []string{"B1"}, Price: 600, CounterMaster: "Karim", Status: domain.StatusPaid, Date: "06/03/2025"},
		{ID: "o3", BusName: "Dhaka-01", AllocatedSeat: []string{"C1"}, Price: 500, CounterMaster: "Karim", Status: "pending", Date: "05/03/2025"},
		{ID: "o4", BusName: "Dhaka-01", AllocatedSeat: []string{"D1"}, Price: 500, CounterMaster: "Rahim", Status: domain.StatusPaid, Date: "05/03/2025"},
	}
	return &fakeAPI{
		listUsers:  func(context.Context) ([]domain.User, error) { return users, nil },
		listOrders: func(context.Context) ([]domain.Order, error) { return orders, nil },
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local)
}

func TestCounterSummaryAggregates(t *testing.T) {
	svc := CounterService{API: counterFixture(), Now: fixedNow}

	page, err := svc.Summary(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if len(page.Masters) != 2 {
		t.Fatalf("expected 2 approved masters, got %d", len(page.Masters))
	}

	karim := page.Masters[0]
	if karim.Name != "Karim" {
		t.Fatalf("unexpected first master: %q", karim.Name)
	}
	if karim.TotalSeatsSold != 3 {
		t.Fatalf("Karim seats sold = %d, want 3 (pending order excluded)", karim.TotalSeatsSold)
	}
	if karim.TotalPrice != 1600 {
		t.Fatalf("Karim total price = %v, want 1600", karim.TotalPrice)
	}
	if karim.Buses != "Dhaka-01, Dhaka-02" {
		t.Fatalf("Karim buses = %q", karim.Buses)
	}
	if karim.Seats != "A1, A2, B1" {
		t.Fatalf("Karim seats = %q", karim.Seats)
	}
	if !karim.HasTransactions {
		t.Fatal("Karim must be marked as having transactions")
	}
}

func TestCounterSummaryDateFilterSelectsPaidMatchingDay(t *testing.T) {
	svc := CounterService{API: counterFixture(), Now: fixedNow}

	page, err := svc.Summary(context.Background(), "05/03/2025", 1)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	karim := page.Masters[0]
	if karim.TotalSeatsSold != 2 || karim.TotalPrice != 1000 {
		t.Fatalf("date filter wrong: seats=%d price=%v, want 2/1000", karim.TotalSeatsSold, karim.TotalPrice)
	}
	if karim.Buses != "Dhaka-01" {
		t.Fatalf("Karim buses = %q, want only Dhaka-01", karim.Buses)
	}
}

func TestCounterSummaryMasterWithoutSales(t *testing.T) {
	svc := CounterService{API: counterFixture(), Now: fixedNow}

	page, err := svc.Summary(context.Background(), "06/03/2025", 1)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	rahim := page.Masters[1]
	if rahim.HasTransactions {
		t.Fatalf("Rahim sold nothing on 06/03, got %+v", rahim)
	}
	if rahim.Name != "Rahim" || rahim.Location != "Dhaka" {
		t.Fatalf("identity fields must survive empty sales: %+v", rahim)
	}
}

func TestCounterSummaryIsIdempotent(t *testing.T) {
	svc := CounterService{API: counterFixture(), Now: fixedNow}

	first, err := svc.Summary(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("first Summary returned error: %v", err)
	}
	second, err := svc.Summary(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("second Summary returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ across identical inputs:\n%+v\n%+v", first, second)
	}
}

func TestCounterSummaryRejectsBadDate(t *testing.T) {
	svc := CounterService{API: counterFixture(), Now: fixedNow}

	if _, err := svc.Summary(context.Background(), "2025-03-05", 1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for ISO date, got %v", err)
	}
	if _, err := svc.Summary(context.Background(), "01/01/2020", 1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error outside booking window, got %v", err)
	}
}

func TestCounterSummaryPageSize(t *testing.T) {
	users := make([]domain.User, 0, 20)
	for i := 0; i < 20; i++ {
		users = append(users, domain.User{
			Name: "M", Role: domain.RoleMaster, Status: domain.StatusApproved,
		})
	}
	svc := CounterService{API: &fakeAPI{
		listUsers:  func(context.Context) ([]domain.User, error) { return users, nil },
		listOrders: func(context.Context) ([]domain.Order, error) { return nil, nil },
	}, Now: fixedNow}

	page, err := svc.Summary(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if len(page.Masters) != MastersPerPage {
		t.Fatalf("page size = %d, want %d", len(page.Masters), MastersPerPage)
	}
	if page.Pagination.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", page.Pagination.TotalPages)
	}
}
