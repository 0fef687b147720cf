package handlers

import (
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CompletionHandler handles HTTP requests for invoice summaries and request
// completion.

type CompletionHandler struct {
	usecase usecase.ICompletionUseCase
}

func NewCompletionHandler(uc usecase.ICompletionUseCase) *CompletionHandler {
	return &CompletionHandler{usecase: uc}
}

// GetSummary godoc
// @Summary      Preview the invoice of an open request
// @Description  Itemizes every approved-checkpoint ongoing item plus approved additional items and their subtotal.
// @Tags         completion
// @Produce      json
// @Param        request_id  path      string  true  "Service request ID"
// @Success      200         {object}  response.InvoiceSummaryResponse
// @Failure      403         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id}/summary [get]
func (h *CompletionHandler) GetSummary(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	summary, err := h.usecase.GetSummary(c.Request.Context(), requestID, actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceSummary(summary))
}

// Complete godoc
// @Summary      Complete a service request
// @Description  Recomputes the invoice server-side, applies charges and discount, writes the final audit checkpoint and flips the status to COMPLETED atomically.
// @Tags         completion
// @Accept       json
// @Produce      json
// @Param        request_id  path      string                     true  "Service request ID"
// @Param        payload     body      request.CompletionRequest  true  "Completion payload"
// @Success      200         {object}  response.CompletionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id}/complete [post]
func (h *CompletionHandler) Complete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	var payload request.CompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[completion][handler] complete start request_id=%s actor=%s charges=%.2f discount=%.2f",
		requestID, actor.ID, payload.AdditionalCharges, payload.Discount)
	result, err := h.usecase.Complete(c.Request.Context(), requestID, actor, payload.Notes, payload.AdditionalCharges, payload.Discount)
	if err != nil {
		log.Printf("[completion][handler] complete failed request_id=%s err=%v", requestID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[completion][handler] complete success request_id=%s final_total=%.2f", requestID, result.FinalTotal)

	c.JSON(http.StatusOK, response.FromCompletionResult(result))
}
