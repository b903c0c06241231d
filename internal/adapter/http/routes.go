package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Health   *Handler
	Loans    *LoanHandler
	Approval *ApprovalHandler
	Payments *PaymentHandler
	Configs  *ConfigHandler
	Clients  *ClientHandler
	Journals *JournalHandler
}

// RegisterRoutes wires all endpoints. idemp guards the mutating loan and
// payment routes; read-only routes skip it.
func RegisterRoutes(e *echo.Echo, h Handlers, idemp echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	loans := e.Group("/loans")
	loans.POST("", h.Loans.CreateLoan, idemp)
	loans.GET("/:loan_id", h.Loans.GetLoan)
	loans.PUT("/:loan_id", h.Loans.UpdateLoan, idemp)
	loans.DELETE("/:loan_id", h.Loans.DeleteLoan, idemp)
	loans.GET("/:loan_id/schedule", h.Loans.GetSchedule)
	loans.POST("/:loan_id/approve", h.Approval.ApproveLoan, idemp)
	loans.POST("/:loan_id/reject", h.Approval.RejectLoan, idemp)
	loans.GET("/:loan_id/payments", h.Payments.ListLoanPayments)

	payments := e.Group("/payments")
	payments.POST("", h.Payments.RegisterPayment, idemp)
	payments.GET("/:payment_id", h.Payments.GetPayment)

	configs := e.Group("/credit-configs")
	configs.POST("", h.Configs.CreateConfig, idemp)
	configs.GET("", h.Configs.ListConfigs)
	configs.GET("/active", h.Configs.GetActiveConfig)
	configs.GET("/:config_id", h.Configs.GetConfig)
	configs.PUT("/:config_id", h.Configs.UpdateConfig, idemp)
	configs.POST("/:config_id/activate", h.Configs.ActivateConfig, idemp)

	clients := e.Group("/clients")
	clients.POST("", h.Clients.RegisterClient, idemp)
	clients.GET("", h.Clients.ListClients)
	clients.GET("/:client_id", h.Clients.GetClient)
	clients.GET("/:client_id/loans", h.Loans.ListClientLoans)

	journals := e.Group("/journals")
	journals.POST("", h.Journals.CreateJournal, idemp)
	journals.GET("", h.Journals.ListJournals)
	journals.GET("/:code", h.Journals.GetJournal)
	journals.POST("/:code/toggle", h.Journals.ToggleJournal, idemp)
}
