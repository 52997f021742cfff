package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brtc-gateway/internal/domain"
	"brtc-gateway/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func testEngine(api *fakeAPI) *gin.Engine {
	h := New(api, nil)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/api/health", h.Health)
	r.GET("/api/buses", h.GetBuses)
	r.GET("/api/buses/:id", h.GetBusByID)
	r.GET("/api/dashboard/summary", h.GetDashboardSummary)
	r.GET("/api/members", h.GetMembers)
	r.DELETE("/api/members/:id", h.DeleteMember)
	r.GET("/api/counters/summary", h.GetCounterSummary)
	r.GET("/api/payments/:busName", h.GetPaymentHistory)
	r.DELETE("/api/payments/:busName/seats/:seatId", h.DeleteSeat)
	r.DELETE("/api/payments/:busName/seats", h.ClearSeats)
	r.GET("/api/reports/counter-summary.pdf", h.CounterSummaryPDF)
	r.GET("/api/reports/payments/:busName", h.PaymentHistoryPDF)
	r.GET("/api/departures", h.GetDepartures)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testEngine(&fakeAPI{}), http.MethodGet, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetBusesListsCards(t *testing.T) {
	api := &fakeAPI{
		listBuses: func(context.Context) ([]domain.Bus, error) {
			return []domain.Bus{{ID: "b1", BusName: "Dhaka-01", TotalSeats: 40, StartTime: "11:00 AM"}}, nil
		},
		allocatedSeats: func(_ context.Context, busName, selectedDate string) ([]domain.Order, error) {
			return []domain.Order{{AllocatedSeat: []string{"A1", "A2"}}}, nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodGet, "/api/buses")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"availableSeats":38`) {
		t.Fatalf("derived availability missing: %s", w.Body.String())
	}
}

func TestGetMembersInvalidPage(t *testing.T) {
	w := doRequest(t, testEngine(&fakeAPI{}), http.MethodGet, "/api/members?page=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["request_id"] == "" {
		t.Fatal("error payload must carry a request id")
	}
}

func TestDeleteMemberRequiresConfirm(t *testing.T) {
	api := &fakeAPI{
		deleteUser: func(context.Context, string) (string, error) {
			t.Fatal("upstream delete must not be reached without confirm")
			return "", nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodDelete, "/api/members/u1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteMemberReturnsFreshPage(t *testing.T) {
	api := &fakeAPI{
		deleteUser: func(_ context.Context, id string) (string, error) {
			if id != "u1" {
				return "", errors.New("wrong id " + id)
			}
			return domain.UserDeletedMessage, nil
		},
		listUsers: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "u2", Name: "Salma", Role: domain.RoleMember}}, nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodDelete, "/api/members/u1?confirm=true")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != domain.UserDeletedMessage {
		t.Fatalf("message = %v", body["message"])
	}
	if !strings.Contains(w.Body.String(), `"Salma"`) {
		t.Fatalf("post-write member list missing: %s", w.Body.String())
	}
}

func TestCounterSummaryUpstreamFailure(t *testing.T) {
	api := &fakeAPI{
		listUsers: func(context.Context) ([]domain.User, error) {
			return nil, domain.UpstreamError{Op: "list_users", Status: http.StatusServiceUnavailable, Err: errors.New("remote down")}
		},
	}
	w := doRequest(t, testEngine(api), http.MethodGet, "/api/counters/summary")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if body := decodeBody(t, w); body["upstreamStatus"] != float64(http.StatusServiceUnavailable) {
		t.Fatalf("upstreamStatus = %v", body["upstreamStatus"])
	}
}

func TestCounterSummaryRejectsISODate(t *testing.T) {
	w := doRequest(t, testEngine(&fakeAPI{}), http.MethodGet, "/api/counters/summary?selectedDate=2025-03-05")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestClearSeatsRequiresConfirm(t *testing.T) {
	api := &fakeAPI{
		clearSeats: func(context.Context, string) error {
			t.Fatal("upstream clear must not be reached without confirm")
			return nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodDelete, "/api/payments/Dhaka-01/seats")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteSeatReturnsFreshHistory(t *testing.T) {
	deleted := false
	api := &fakeAPI{
		listBuses: func(context.Context) ([]domain.Bus, error) {
			return []domain.Bus{{ID: "b1", BusName: "Dhaka-01", TotalSeats: 40}}, nil
		},
		deleteSeat: func(_ context.Context, busName, seatID string) error {
			if busName != "Dhaka-01" || seatID != "s2" {
				return errors.New("wrong target")
			}
			deleted = true
			return nil
		},
		orderSeats: func(context.Context, string, string) ([]domain.Order, error) {
			if !deleted {
				return nil, errors.New("history fetched before the write")
			}
			return []domain.Order{{ID: "s1", BusName: "Dhaka-01", AllocatedSeat: []string{"A1"}, Price: 550}}, nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodDelete, "/api/payments/Dhaka-01/seats/s2?confirm=true")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalAllocatedSeats":1`) {
		t.Fatalf("re-fetched history missing: %s", w.Body.String())
	}
}

func TestPaymentHistoryPDFHeaders(t *testing.T) {
	api := &fakeAPI{
		listBuses: func(context.Context) ([]domain.Bus, error) {
			return []domain.Bus{{ID: "b1", BusName: "Dhaka-01", TotalSeats: 40}}, nil
		},
		orderSeats: func(context.Context, string, string) ([]domain.Order, error) {
			return []domain.Order{{ID: "s1", BusName: "Dhaka-01", AllocatedSeat: []string{"A1"}, Price: 550, Name: "Karim"}}, nil
		},
	}
	w := doRequest(t, testEngine(api), http.MethodGet, "/api/reports/payments/Dhaka-01")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "PAYMENTS_Dhaka-01_ALL.pdf") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatal("body is not a PDF document")
	}
}

func TestDeparturesUnavailableWithoutBoard(t *testing.T) {
	w := doRequest(t, testEngine(&fakeAPI{}), http.MethodGet, "/api/departures")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
