package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/observability"
)

// Client is the typed consumer of the BRTC API. The bearer token is explicit
// client state injected at the composition root; nothing here reads ambient
// storage. All calls take a context and a per-call timeout comes from the
// embedded http.Client.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// ListBuses fetches every configured bus service. Public endpoint.
func (c *Client) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	var out []domain.Bus
	err := c.do(ctx, "list_buses", http.MethodGet, "/buses", nil, false, &out)
	return out, err
}

// GetBus fetches one bus by its identifier. Public endpoint.
func (c *Client) GetBus(ctx context.Context, id string) (domain.Bus, error) {
	var out domain.Bus
	err := c.do(ctx, "get_bus", http.MethodGet, "/buses/"+url.PathEscape(id), nil, false, &out)
	return out, err
}

// ListUsers fetches all registered users; role filtering happens in the views.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, "list_users", http.MethodGet, "/users", nil, true, &out)
	return out, err
}

// DeleteUser removes a user record and returns the upstream status message.
// The API signals success with a fixed message string, not the HTTP status
// alone, so callers must compare against domain.UserDeletedMessage.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, "delete_user", http.MethodDelete, "/users/"+url.PathEscape(id), nil, true, &out)
	return out.Message, err
}

// ListOrders fetches every order across buses and counters.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, "list_orders", http.MethodGet, "/orders", nil, true, &out)
	return out, err
}

// AllocatedSeats fetches the paid seat allocations for one bus. selectedDate
// (DD/MM/YYYY) is optional; empty means all days.
func (c *Client) AllocatedSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error) {
	var out []domain.Order
	q := dateQuery(selectedDate)
	err := c.do(ctx, "allocated_seats", http.MethodGet, "/allocated-seats/"+url.PathEscape(busName), q, true, &out)
	return out, err
}

// OrderSeats fetches the order-level payment history for one bus, optionally
// scoped to a day.
func (c *Client) OrderSeats(ctx context.Context, busName, selectedDate string) ([]domain.Order, error) {
	var out []domain.Order
	q := dateQuery(selectedDate)
	err := c.do(ctx, "order_seats", http.MethodGet, "/order-seats/"+url.PathEscape(busName), q, true, &out)
	return out, err
}

// DeleteOrderSeat removes a single seat allocation from a bus.
func (c *Client) DeleteOrderSeat(ctx context.Context, busName, seatID string) error {
	path := "/order-seats/" + url.PathEscape(busName) + "/" + url.PathEscape(seatID)
	return c.do(ctx, "delete_order_seat", http.MethodDelete, path, nil, true, nil)
}

// ClearAllocatedSeats wipes every seat allocation for a bus.
func (c *Client) ClearAllocatedSeats(ctx context.Context, busName string) error {
	return c.do(ctx, "clear_allocated_seats", http.MethodDelete, "/orders/clear-ala/"+url.PathEscape(busName), nil, true, nil)
}

// ListRoutes fetches the fare plans for all buses; views filter by busName.
func (c *Client) ListRoutes(ctx context.Context) ([]domain.RoutePlan, error) {
	var out []domain.RoutePlan
	err := c.do(ctx, "list_routes", http.MethodGet, "/routes", nil, false, &out)
	return out, err
}

func dateQuery(selectedDate string) url.Values {
	if selectedDate == "" {
		return nil
	}
	return url.Values{"selectedDate": {selectedDate}}
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, auth bool, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return domain.InternalError{Msg: "build upstream request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	observability.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.UpstreamRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		return domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		observability.UpstreamRequestsTotal.WithLabelValues(op, "not_found").Inc()
		return domain.NotFoundError{Resource: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return domain.UpstreamError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		observability.UpstreamRequestsTotal.WithLabelValues(op, "ok").Inc()
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		observability.UpstreamRequestsTotal.WithLabelValues(op, "decode_error").Inc()
		return domain.UpstreamError{Op: op, Err: fmt.Errorf("unexpected response format: %w", err)}
	}
	observability.UpstreamRequestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}
