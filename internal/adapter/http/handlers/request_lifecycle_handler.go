package handlers

import (
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequestLifecycleHandler handles HTTP requests for the service request
// lifecycle: creation, status transitions and lookup.

type RequestLifecycleHandler struct {
	usecase usecase.IRequestLifecycleUseCase
}

func NewRequestLifecycleHandler(uc usecase.IRequestLifecycleUseCase) *RequestLifecycleHandler {
	return &RequestLifecycleHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary      Open a service request
// @Description  Creates a PENDING service request for one of the customer's vehicles.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateServiceRequestRequest  true  "Request payload"
// @Success      201      {object}  response.ServiceRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /v1/requests [post]
func (h *RequestLifecycleHandler) CreateRequest(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[request][handler] create start actor=%s garage=%s vehicle=%s", actor.ID, payload.GarageID, payload.VehicleID)
	created, err := h.usecase.CreateRequest(c.Request.Context(), actor, payload.GarageID, payload.VehicleID, entities.Coordinates{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	})
	if err != nil {
		log.Printf("[request][handler] create failed actor=%s err=%v", actor.ID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] create success request_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// GetRequest godoc
// @Summary      Fetch a service request
// @Tags         requests
// @Produce      json
// @Param        request_id  path      string  true  "Service request ID"
// @Success      200         {object}  response.ServiceRequestResponse
// @Failure      403         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id} [get]
func (h *RequestLifecycleHandler) GetRequest(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	req, err := h.usecase.GetByID(c.Request.Context(), requestID, actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

// UpdateStatus godoc
// @Summary      Transition a service request
// @Description  Moves the request to a new status along the lifecycle graph. PENDING→ACCEPTED carries the mechanic assignment; COMPLETED is rejected here (use the completion endpoint).
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request_id  path      string                       true  "Service request ID"
// @Param        payload     body      request.StatusUpdateRequest  true  "Target status"
// @Success      200         {object}  response.ServiceRequestResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /v1/requests/{request_id}/status [patch]
func (h *RequestLifecycleHandler) UpdateStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	requestID := c.Param("request_id")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	log.Printf("[request][handler] status start request_id=%s actor=%s target=%s", requestID, actor.ID, payload.Status)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), requestID, actor, entities.RequestStatus(payload.Status), payload.MechanicID)
	if err != nil {
		log.Printf("[request][handler] status failed request_id=%s err=%v", requestID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] status success request_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}
