package routes

import (
	"time"

	"payment-api/controllers"
	"payment-api/middleware"

	"github.com/gin-gonic/gin"
)

// Options toggles the per-deployment route policies.
type Options struct {
	// EnableCustomerAPI exposes the /customers surface. One deployment
	// profile omits customer management entirely.
	EnableCustomerAPI bool
	// SimulateDelay adds artificial gateway latency to the payment routes.
	SimulateDelay bool
}

// Register sets up all routes.
func Register(r *gin.Engine, pc *controllers.PaymentController, cc *controllers.CustomerController, sc *controllers.StatsController, opts Options) {
	// Gateway-facing routes optionally carry the simulated-latency middleware.
	gateway := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if !opts.SimulateDelay {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.SimulatedDelay(50*time.Millisecond, 250*time.Millisecond), h}
	}

	orders := r.Group("/orders")
	orders.GET("", pc.ListOrders)
	orders.GET("/:id", pc.GetOrder)
	orders.POST("/checkout", gateway(pc.Checkout)...)

	payments := r.Group("/payments")
	payments.POST("/settle", gateway(pc.Settle)...)

	r.POST("/authorize", gateway(pc.Authorize)...)

	r.GET("/stats", sc.GetStats)

	if opts.EnableCustomerAPI {
		customers := r.Group("/customers")
		customers.POST("", cc.CreateCustomer)
		customers.GET("", cc.ListCustomers)
		customers.GET("/:id", cc.GetCustomer)
		customers.DELETE("/:id", cc.DeleteCustomer)
	}
}
