package api

import "github.com/gin-gonic/gin"

// NewRouter wires all routes. Everything except the health probe requires
// the actor identity headers.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", h.Health)

	authed := r.Group("/")
	authed.Use(ActorMiddleware())
	{
		authed.POST("/transactions", h.CreateTransaction)
		authed.PUT("/transactions/:id", h.UpdateTransaction)
		authed.DELETE("/transactions/:id", h.DeleteTransaction)

		authed.POST("/credits/payments", h.CreateCreditPayment)
		authed.POST("/expenses", h.CreateExpense)

		authed.POST("/cashtracker/open", h.OpenDay)
		authed.POST("/cashtracker/close", h.CloseDay)
		authed.GET("/cashtracker/breakdown", h.DenominationBreakdown)

		authed.GET("/ledger/daily", h.DailyLedger)

		authed.POST("/customers", h.CreateCustomer)
		authed.GET("/customers/:id", h.GetCustomer)
	}

	return r
}
