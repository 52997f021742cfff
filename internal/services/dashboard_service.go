package services

import (
	"context"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/utils"
)

// DashboardAPI is the slice of the upstream client the admin dashboard needs.
type DashboardAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListBuses(ctx context.Context) ([]domain.Bus, error)
}

// DashboardSummary carries the four admin-home counters.
type DashboardSummary struct {
	TotalUsers     int `json:"totalUsers"`
	CounterMasters int `json:"counterMasters"`
	NormalUsers    int `json:"normalUsers"`
	TotalBuses     int `json:"totalBuses"`
}

type DashboardService struct {
	API       DashboardAPI
	RequestID string
}

// Summary counts users by role and buses overall. The two fetches are
// independent upstream reads; either failure fails the view.
func (s DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	var out DashboardSummary

	users, err := s.API.ListUsers(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "dashboard", "list_users", err)
		return out, err
	}
	out.TotalUsers = len(users)
	for _, u := range users {
		switch u.Role {
		case domain.RoleMaster:
			out.CounterMasters++
		case domain.RoleMember:
			out.NormalUsers++
		}
	}

	buses, err := s.API.ListBuses(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "dashboard", "list_buses", err)
		return out, err
	}
	out.TotalBuses = len(buses)

	utils.LogEvent(s.RequestID, "dashboard", "summary", "derived admin counters")
	return out, nil
}
