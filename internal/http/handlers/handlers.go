package handlers

import (
	"time"

	"brtc-gateway/internal/http/middleware"
	"brtc-gateway/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers carries the shared dependencies of every route. Services are cheap
// value types, so each handler builds one per request with the request id
// already threaded through.
type Handlers struct {
	API   services.API
	Board *services.DepartureBoard
}

func New(api services.API, board *services.DepartureBoard) *Handlers {
	return &Handlers{API: api, Board: board}
}

func (h *Handlers) buses(c *gin.Context) services.BusService {
	return services.BusService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) users(c *gin.Context) services.UserService {
	return services.UserService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) counters(c *gin.Context) services.CounterService {
	return services.CounterService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) dashboard(c *gin.Context) services.DashboardService {
	return services.DashboardService{API: h.API, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) docs(c *gin.Context) services.DocsService {
	counters := h.counters(c)
	payments := h.payments(c)
	return services.DocsService{
		SummaryLoader: counters.Summary,
		HistoryLoader: payments.History,
		RequestID:     middleware.GetRequestID(c),
	}
}

// requestTimeout bounds every upstream round trip a handler issues.
const requestTimeout = 30 * time.Second
