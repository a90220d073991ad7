package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// CountingDetailHandler handles operator observations
type CountingDetailHandler struct {
	BaseHandler
	service *inventoryapp.CountingDetailService
}

// NewCountingDetailHandler creates a new CountingDetailHandler
func NewCountingDetailHandler(service *inventoryapp.CountingDetailService) *CountingDetailHandler {
	return &CountingDetailHandler{service: service}
}

// Record godoc
// @ID recordCountingDetail
// @Summary Record an observation
// @Description Record the quantity counted for one (pass, location, product) and reconcile the matching discrepancy
// @Tags counting-details
// @Accept json
// @Produce json
// @Param request body inventoryapp.RecordObservationRequest true "Observation"
// @Success 201 {object} APIResponse[inventoryapp.ObservationResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /counting-details [post]
func (h *CountingDetailHandler) Record(c *gin.Context) {
	var req inventoryapp.RecordObservationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	obs, err := h.service.RecordObservation(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, obs)
}
