package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets  = "/budgets"
	PathPayments = "/payments"
	PathOrders   = "/orders"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	paymentHandler *handlers.PaymentHandler,
	orderHandler *handlers.OrderHandler,
) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.GenerateBudget)
		budgets.POST("/:budget_id/send", budgetHandler.SendBudget)
		budgets.POST("/:budget_id/approve", budgetHandler.ApproveBudget)
		budgets.POST("/:budget_id/reject", budgetHandler.RejectBudget)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.GET("/customer/:customer_id", budgetHandler.ListBudgetsByCustomer)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.RegisterPayment)
		payments.POST("/:payment_id/process", paymentHandler.ProcessPayment)
		payments.POST("/:payment_id/complete", paymentHandler.CompletePayment)
		payments.POST("/:payment_id/fail", paymentHandler.FailPayment)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.GET("/budget/:budget_id", paymentHandler.ListPaymentsByBudget)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/retry-syncs", orderHandler.RetrySyncs)
	}
}
