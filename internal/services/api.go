package services

// API is the full upstream surface the gateway consumes; *upstream.Client
// satisfies it. The per-service interfaces overlap, which is fine for
// embedding, and keeps each service honest about the calls it may issue.
type API interface {
	DashboardAPI
	UserAPI
	CounterAPI
	PaymentAPI
	BusAPI
}
