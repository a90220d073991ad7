package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// EcartHandler handles counting discrepancies
type EcartHandler struct {
	BaseHandler
	service *inventoryapp.EcartService
}

// NewEcartHandler creates a new EcartHandler
func NewEcartHandler(service *inventoryapp.EcartService) *EcartHandler {
	return &EcartHandler{service: service}
}

// ListByInventory godoc
// @ID listInventoryEcarts
// @Summary List the discrepancies of an inventory
// @Tags ecarts
// @Produce json
// @Param id path int true "Inventory ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) maximum(100)
// @Param resolved query bool false "Resolution filter"
// @Success 200 {object} APIResponse[[]inventoryapp.EcartResponse]
// @Failure 400 {object} ErrorResponse
// @Router /inventories/{id}/ecarts [get]
func (h *EcartHandler) ListByInventory(c *gin.Context) {
	inventoryID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var filter inventoryapp.EcartListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	ecarts, total, err := h.service.ListByInventory(c.Request.Context(), inventoryID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, ecarts, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID getEcartById
// @Summary Get a discrepancy
// @Description Get a discrepancy with its ordered sequences
// @Tags ecarts
// @Produce json
// @Param id path int true "Ecart ID"
// @Success 200 {object} APIResponse[inventoryapp.EcartResponse]
// @Failure 404 {object} ErrorResponse
// @Router /ecarts/{id} [get]
func (h *EcartHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	ecart, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ecart)
}

// SetFinalResult godoc
// @ID setEcartFinalResult
// @Summary Set the final result of a discrepancy
// @Tags ecarts
// @Accept json
// @Produce json
// @Param id path int true "Ecart ID"
// @Param request body inventoryapp.SetFinalResultRequest true "Final result"
// @Success 200 {object} APIResponse[inventoryapp.EcartResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /ecarts/{id}/final-result [put]
func (h *EcartHandler) SetFinalResult(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req inventoryapp.SetFinalResultRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ecart, err := h.service.SetFinalResult(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ecart)
}

// Resolve godoc
// @ID resolveEcart
// @Summary Resolve a discrepancy
// @Description Mark a discrepancy resolved; a final result must already be set
// @Tags ecarts
// @Accept json
// @Produce json
// @Param id path int true "Ecart ID"
// @Param request body inventoryapp.ResolveEcartRequest false "Justification"
// @Success 200 {object} APIResponse[inventoryapp.EcartResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /ecarts/{id}/resolve [post]
func (h *EcartHandler) Resolve(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req inventoryapp.ResolveEcartRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}

	ecart, err := h.service.Resolve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ecart)
}
