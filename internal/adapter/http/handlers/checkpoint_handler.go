package handlers

import (
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckpointHandler handles HTTP requests for the checkpoint ledger.

type CheckpointHandler struct {
	usecase usecase.IStatusUpdateUseCase
}

func NewCheckpointHandler(uc usecase.IStatusUpdateUseCase) *CheckpointHandler {
	return &CheckpointHandler{usecase: uc}
}

// AddCheckpoint godoc
// @Summary      Post a status update
// @Description  Appends a mechanic-authored checkpoint to an open request's ledger.
// @Tags         checkpoints
// @Accept       json
// @Produce      json
// @Param        request_id  path      string                           true  "Service request ID"
// @Param        payload     body      request.CheckpointCreateRequest  true  "Checkpoint payload"
// @Success      201         {object}  response.CheckpointResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id}/checkpoints [post]
func (h *CheckpointHandler) AddCheckpoint(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	var payload request.CheckpointCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[checkpoint][handler] add start request_id=%s actor=%s", requestID, actor.ID)
	created, err := h.usecase.AddCheckpoint(c.Request.Context(), requestID, actor, payload.Description)
	if err != nil {
		log.Printf("[checkpoint][handler] add failed request_id=%s err=%v", requestID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkpoint][handler] add success checkpoint_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromCheckpoint(created))
}

// SetApproval godoc
// @Summary      Approve or revoke a status update
// @Tags         checkpoints
// @Accept       json
// @Produce      json
// @Param        checkpoint_id  path      string                   true  "Checkpoint ID"
// @Param        payload        body      request.ApprovalRequest  true  "Approval toggle"
// @Success      200            {object}  response.CheckpointResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      403            {object}  pkg.HTTPError
// @Failure      404            {object}  pkg.HTTPError
// @Failure      422            {object}  pkg.HTTPError
// @Router       /v1/checkpoints/{checkpoint_id}/approval [patch]
func (h *CheckpointHandler) SetApproval(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	checkpointID := c.Param("checkpoint_id")

	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approved == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetCheckpointApproval(c.Request.Context(), checkpointID, actor, *payload.Approved)
	if err != nil {
		log.Printf("[checkpoint][handler] approval failed checkpoint_id=%s err=%v", checkpointID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckpoint(updated))
}

// ListByRequest godoc
// @Summary      List a request's checkpoint ledger
// @Description  Returns every checkpoint with its nested ongoing and additional items.
// @Tags         checkpoints
// @Produce      json
// @Param        request_id  path      string  true  "Service request ID"
// @Success      200         {array}   response.CheckpointWithItemsResponse
// @Failure      403         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id}/checkpoints [get]
func (h *CheckpointHandler) ListByRequest(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	entries, err := h.usecase.ListByRequest(c.Request.Context(), requestID, actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CheckpointWithItemsResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.FromCheckpointWithItems(e))
	}
	c.JSON(http.StatusOK, out)
}
