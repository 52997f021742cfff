package api

import (
	"log"
	stdhttp "net/http"

	intconfig "brtc-gateway/internal/config"
	h "brtc-gateway/internal/http/handlers"
	"brtc-gateway/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env, handlers *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins), middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// Public bus views
		buses := api.Group("/buses")
		buses.GET("", handlers.GetBuses)
		buses.GET("/:id", handlers.GetBusByID)

		// Live departure board
		departures := api.Group("/departures")
		departures.GET("", handlers.GetDepartures)
		departures.PUT("/:id", handlers.WatchDeparture)

		// Admin views
		api.GET("/dashboard/summary", handlers.GetDashboardSummary)

		members := api.Group("/members")
		members.GET("", handlers.GetMembers)
		members.DELETE("/:id", handlers.DeleteMember)

		counters := api.Group("/counters")
		counters.GET("/summary", handlers.GetCounterSummary)

		payments := api.Group("/payments")
		payments.GET("/:busName", handlers.GetPaymentHistory)
		payments.DELETE("/:busName/seats/:seatId", handlers.DeleteSeat)
		payments.DELETE("/:busName/seats", handlers.ClearSeats)

		reports := api.Group("/reports")
		reports.GET("/counter-summary.pdf", handlers.CounterSummaryPDF)
		reports.GET("/payments/:busName", handlers.PaymentHistoryPDF)
	}

	return r
}
