package domain

// Wire models for the BRTC API. Field tags match the upstream JSON exactly;
// the gateway never renames remote fields on the way through.

const (
	RoleMaster = "master"
	RoleMember = "member"

	StatusPaid     = "paid"
	StatusApproved = "approved"

	// Fixed message the upstream returns on a successful user delete.
	UserDeletedMessage = "User deleted successfully"
)

// Bus is a scheduled service with a fixed seat capacity.
type Bus struct {
	ID            string `json:"_id"`
	BusName       string `json:"busName"`
	TotalSeats    int    `json:"totalSeats"`
	StartTime     string `json:"startTime"` // "h:mm AM/PM"
	ImageURL      string `json:"imageUrl,omitempty"`
	Description   string `json:"description,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	StartingPoint string `json:"startingPoint,omitempty"`
	EndingPoint   string `json:"endingPoint,omitempty"`
}

// Order is one paid (or pending) seat allocation. A single order may hold
// several seat labels; occupancy for a bus/date is the union of allocatedSeat
// across its paid orders.
type Order struct {
	ID            string   `json:"_id"`
	BusName       string   `json:"busName"`
	AllocatedSeat []string `json:"allocatedSeat"`
	Price         float64  `json:"price"`
	Name          string   `json:"name,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	Location      string   `json:"location,omitempty"`
	CounterMaster string   `json:"counterMaster,omitempty"`
	Status        string   `json:"status,omitempty"`
	Date          string   `json:"date,omitempty"` // DD/MM/YYYY
}

// User is a registered account; role and approval status gate admin views.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status,omitempty"`
}

// RouteFare is one named fare tier on a bus.
type RouteFare struct {
	RouteName string  `json:"routeName"`
	Price     float64 `json:"price"`
}

// RoutePlan carries every fare tier configured for a bus.
type RoutePlan struct {
	BusName string      `json:"busName"`
	Routes  []RouteFare `json:"routes"`
}

// Pagination carries paging params and totals on list views.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
