package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests        = "/requests"
	PathCheckpoints     = "/checkpoints"
	PathOngoingItems    = "/ongoing-items"
	PathAdditionalItems = "/additional-items"
	PathPayments        = "/payments"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	lifecycleHandler *handlers.RequestLifecycleHandler,
	checkpointHandler *handlers.CheckpointHandler,
	itemHandler *handlers.ServiceItemHandler,
	completionHandler *handlers.CompletionHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", lifecycleHandler.CreateRequest)
		requests.GET("/:request_id", lifecycleHandler.GetRequest)
		requests.PATCH("/:request_id/status", lifecycleHandler.UpdateStatus)
		requests.POST("/:request_id/checkpoints", checkpointHandler.AddCheckpoint)
		requests.GET("/:request_id/checkpoints", checkpointHandler.ListByRequest)
		requests.GET("/:request_id/summary", completionHandler.GetSummary)
		requests.POST("/:request_id/complete", completionHandler.Complete)
	}

	checkpoints := rg.Group(PathCheckpoints)
	{
		checkpoints.PATCH("/:checkpoint_id/approval", checkpointHandler.SetApproval)
		checkpoints.POST("/:checkpoint_id/ongoing-items", itemHandler.AddOngoingItem)
		checkpoints.POST("/:checkpoint_id/additional-items", itemHandler.AddAdditionalItem)
	}

	ongoing := rg.Group(PathOngoingItems)
	{
		ongoing.PATCH("/:item_id/finish", itemHandler.FinishOngoingItem)
	}

	additional := rg.Group(PathAdditionalItems)
	{
		additional.PATCH("/:item_id/approval", itemHandler.SetAdditionalApproval)
		additional.DELETE("/:item_id", itemHandler.RemoveAdditionalItem)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:request_id", paymentHandler.ChargeInvoice)
		payments.GET("/:request_id", paymentHandler.GetPayment)
	}
}
