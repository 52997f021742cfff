package services

import (
	"context"
	"fmt"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/utils"
)

// MembersPerPage is the fixed page size of the member management table.
const MembersPerPage = 12

// UserAPI is the slice of the upstream client the member views need.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) (string, error)
}

// MemberPage is one page of the member table plus paging info.
type MemberPage struct {
	Members    []domain.User     `json:"members"`
	Pagination domain.Pagination `json:"pagination"`
}

type UserService struct {
	API       UserAPI
	RequestID string
}

// Members lists role=="member" users, sliced to the requested page.
func (s UserService) Members(ctx context.Context, page int) (MemberPage, error) {
	users, err := s.API.ListUsers(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "users", "list", err)
		return MemberPage{}, err
	}

	members := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleMember {
			members = append(members, u)
		}
	}
	return MemberPage{
		Members:    paginate(members, page, MembersPerPage),
		Pagination: pageInfo(page, MembersPerPage, len(members)),
	}, nil
}

// Delete removes a member after explicit confirmation. Success is signaled by
// the upstream's fixed message; anything else is treated as a failed write.
// On success the member list is re-fetched so the caller always renders
// post-write state (write-then-invalidate).
func (s UserService) Delete(ctx context.Context, id string, confirm bool) (MemberPage, error) {
	if !confirm {
		return MemberPage{}, domain.ValidationError{Field: "confirm", Msg: "deletion requires confirmation"}
	}
	if utils.TrimOrEmpty(id) == "" {
		return MemberPage{}, domain.ValidationError{Field: "id", Msg: "user id is required"}
	}

	msg, err := s.API.DeleteUser(ctx, id)
	if err != nil {
		utils.LogError(s.RequestID, "users", "delete", err)
		return MemberPage{}, err
	}
	if msg != domain.UserDeletedMessage {
		err := domain.UpstreamError{Op: "delete_user", Err: fmt.Errorf("unexpected message %q", msg)}
		utils.LogError(s.RequestID, "users", "delete", err)
		return MemberPage{}, err
	}

	utils.LogEvent(s.RequestID, "users", "delete", "user "+id+" deleted")
	return s.Members(ctx, 1)
}

// paginate returns the requested 1-based page slice; out-of-range pages come
// back empty rather than erroring, mirroring the table widgets.
func paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func pageInfo(page, perPage, total int) domain.Pagination {
	if page < 1 {
		page = 1
	}
	return domain.Pagination{
		Page:       page,
		PageSize:   perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
