package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// InventoryHandler handles inventory configuration endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Create godoc
// @ID createInventory
// @Summary Create an inventory
// @Description Create an inventory in preparation with its warehouses and exactly three counting passes
// @Tags inventories
// @Accept json
// @Produce json
// @Param request body inventoryapp.CreateInventoryRequest true "Inventory configuration"
// @Success 201 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventories [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, inv)
}

// ValidateCountings godoc
// @ID validateCountings
// @Summary Validate a counting sequence
// @Description Check a pass sequence without persisting it and list every violated rule
// @Tags inventories
// @Accept json
// @Produce json
// @Param request body inventoryapp.ValidateCountingsRequest true "Counting passes"
// @Success 200 {object} APIResponse[inventoryapp.CountingValidationResponse]
// @Failure 400 {object} ErrorResponse
// @Router /inventories/validate-countings [post]
func (h *InventoryHandler) ValidateCountings(c *gin.Context) {
	var req inventoryapp.ValidateCountingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.Success(c, h.service.ValidateCountings(c.Request.Context(), req))
}

// List godoc
// @ID listInventories
// @Summary List inventories
// @Tags inventories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) maximum(100)
// @Param search query string false "Search in label and reference"
// @Param status query string false "Status filter"
// @Param inventory_type query string false "Inventory type filter"
// @Param warehouse_id query int false "Warehouse filter"
// @Success 200 {object} APIResponse[[]inventoryapp.InventoryResponse]
// @Failure 400 {object} ErrorResponse
// @Router /inventories [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.InventoryListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	inventories, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, inventories, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID getInventoryById
// @Summary Get an inventory
// @Tags inventories
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	inv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inv)
}

// Update godoc
// @ID updateInventory
// @Summary Update an inventory
// @Description Replace the configuration of an inventory still in preparation
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body inventoryapp.UpdateInventoryRequest true "Inventory configuration"
// @Success 200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req inventoryapp.UpdateInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inv)
}

// Delete godoc
// @ID deleteInventory
// @Summary Delete an inventory
// @Tags inventories
// @Param id path int true "Inventory ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
