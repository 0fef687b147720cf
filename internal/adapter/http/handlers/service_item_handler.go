package handlers

import (
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceItemHandler handles HTTP requests for checkpoint-nested billable
// items: ongoing (pre-agreed) and additional (discovered) work.

type ServiceItemHandler struct {
	usecase usecase.IServiceItemUseCase
}

func NewServiceItemHandler(uc usecase.IServiceItemUseCase) *ServiceItemHandler {
	return &ServiceItemHandler{usecase: uc}
}

// AddOngoingItem godoc
// @Summary      Add an ongoing item to a checkpoint
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        checkpoint_id  path      string                            true  "Checkpoint ID"
// @Param        payload        body      request.OngoingItemCreateRequest  true  "Item payload"
// @Success      201            {object}  response.OngoingItemResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      403            {object}  pkg.HTTPError
// @Failure      404            {object}  pkg.HTTPError
// @Failure      422            {object}  pkg.HTTPError
// @Router       /v1/checkpoints/{checkpoint_id}/ongoing-items [post]
func (h *ServiceItemHandler) AddOngoingItem(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	checkpointID := c.Param("checkpoint_id")

	var payload request.OngoingItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[item][handler] add-ongoing start checkpoint_id=%s actor=%s service=%s", checkpointID, actor.ID, payload.CatalogServiceID)
	created, err := h.usecase.AddOngoingItem(c.Request.Context(), checkpointID, actor, payload.CatalogServiceID, payload.ExpectedDate, payload.Price)
	if err != nil {
		log.Printf("[item][handler] add-ongoing failed checkpoint_id=%s err=%v", checkpointID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOngoingItem(created))
}

// FinishOngoingItem godoc
// @Summary      Mark an ongoing item as finished
// @Tags         items
// @Produce      json
// @Param        item_id  path      string  true  "Ongoing item ID"
// @Success      200      {object}  response.OngoingItemResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /v1/ongoing-items/{item_id}/finish [patch]
func (h *ServiceItemHandler) FinishOngoingItem(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")

	updated, err := h.usecase.FinishOngoingItem(c.Request.Context(), itemID, actor)
	if err != nil {
		log.Printf("[item][handler] finish failed item_id=%s err=%v", itemID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOngoingItem(updated))
}

// AddAdditionalItem godoc
// @Summary      Propose an additional item on a checkpoint
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        checkpoint_id  path      string                               true  "Checkpoint ID"
// @Param        payload        body      request.AdditionalItemCreateRequest  true  "Item payload"
// @Success      201            {object}  response.AdditionalItemResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      403            {object}  pkg.HTTPError
// @Failure      404            {object}  pkg.HTTPError
// @Failure      422            {object}  pkg.HTTPError
// @Router       /v1/checkpoints/{checkpoint_id}/additional-items [post]
func (h *ServiceItemHandler) AddAdditionalItem(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	checkpointID := c.Param("checkpoint_id")

	var payload request.AdditionalItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[item][handler] add-additional start checkpoint_id=%s actor=%s service=%s", checkpointID, actor.ID, payload.CatalogServiceID)
	created, err := h.usecase.AddAdditionalItem(c.Request.Context(), checkpointID, actor, payload.CatalogServiceID, payload.Price)
	if err != nil {
		log.Printf("[item][handler] add-additional failed checkpoint_id=%s err=%v", checkpointID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdditionalItem(created))
}

// SetAdditionalApproval godoc
// @Summary      Approve or decline an additional item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item_id  path      string                   true  "Additional item ID"
// @Param        payload  body      request.ApprovalRequest  true  "Approval toggle"
// @Success      200      {object}  response.AdditionalItemResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /v1/additional-items/{item_id}/approval [patch]
func (h *ServiceItemHandler) SetAdditionalApproval(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")

	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approved == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetAdditionalItemApproval(c.Request.Context(), itemID, actor, *payload.Approved)
	if err != nil {
		log.Printf("[item][handler] approval failed item_id=%s err=%v", itemID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdditionalItem(updated))
}

// RemoveAdditionalItem godoc
// @Summary      Withdraw an unapproved additional item
// @Tags         items
// @Param        item_id  path  string  true  "Additional item ID"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /v1/additional-items/{item_id} [delete]
func (h *ServiceItemHandler) RemoveAdditionalItem(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")

	if err := h.usecase.RemoveAdditionalItem(c.Request.Context(), itemID, actor); err != nil {
		log.Printf("[item][handler] remove failed item_id=%s err=%v", itemID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
