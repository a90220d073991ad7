package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// LifecycleHandler handles inventory status transitions
type LifecycleHandler struct {
	BaseHandler
	service *inventoryapp.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler
func NewLifecycleHandler(service *inventoryapp.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

// CheckLaunch godoc
// @ID checkInventoryLaunch
// @Summary Check launch preconditions
// @Description List every launch precondition violation without changing the inventory
// @Tags inventory-lifecycle
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventory.LaunchReport]
// @Failure 404 {object} ErrorResponse
// @Router /inventories/{id}/launch-check [get]
func (h *LifecycleHandler) CheckLaunch(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	report, err := h.service.CheckLaunch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// Launch godoc
// @ID launchInventory
// @Summary Launch an inventory
// @Description Move the inventory to EN REALISATION and seed the stock image passes
// @Tags inventory-lifecycle
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/launch [post]
func (h *LifecycleHandler) Launch(c *gin.Context) {
	h.transition(c, h.service.Launch)
}

// Cancel godoc
// @ID cancelInventory
// @Summary Cancel a launch
// @Description Return a launched inventory to EN PREPARATION and purge its observations
// @Tags inventory-lifecycle
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/cancel [post]
func (h *LifecycleHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

// Complete godoc
// @ID completeInventory
// @Summary Complete an inventory
// @Description Move the inventory to TERMINE once every job is done; otherwise list the pending jobs
// @Tags inventory-lifecycle
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventoryapp.CompletionResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/complete [post]
func (h *LifecycleHandler) Complete(c *gin.Context) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Complete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Close godoc
// @ID closeInventory
// @Summary Close an inventory
// @Tags inventory-lifecycle
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/close [post]
func (h *LifecycleHandler) Close(c *gin.Context) {
	h.transition(c, h.service.Close)
}

func (h *LifecycleHandler) transition(c *gin.Context, fn func(ctx context.Context, id int64) (*inventoryapp.InventoryResponse, error)) {
	id, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	inv, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inv)
}
