package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// ResultHandler serves the aggregated results of an inventory warehouse
type ResultHandler struct {
	BaseHandler
	service *inventoryapp.ResultService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(service *inventoryapp.ResultService) *ResultHandler {
	return &ResultHandler{service: service}
}

// List godoc
// @ID listInventoryResults
// @Summary Aggregated results
// @Description One row per location and product with the quantity of each pass and the discrepancy outcome
// @Tags results
// @Produce json
// @Param id path int true "Inventory ID"
// @Param warehouse_id path int true "Warehouse ID"
// @Success 200 {object} APIResponse[[]inventory.ResultRow]
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/warehouses/{warehouse_id}/results [get]
func (h *ResultHandler) List(c *gin.Context) {
	inventoryID, warehouseID, ok := h.params(c)
	if !ok {
		return
	}

	rows, err := h.service.Results(c.Request.Context(), inventoryID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// Export godoc
// @ID exportInventoryResults
// @Summary Export the aggregated results
// @Description Download the aggregated results as a spreadsheet
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Inventory ID"
// @Param warehouse_id path int true "Warehouse ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /inventories/{id}/warehouses/{warehouse_id}/results/export [get]
func (h *ResultHandler) Export(c *gin.Context) {
	inventoryID, warehouseID, ok := h.params(c)
	if !ok {
		return
	}

	// Rendered into memory so that a failure can still answer a JSON error
	var buf bytes.Buffer
	filename, err := h.service.Export(c.Request.Context(), inventoryID, warehouseID, &buf)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, h.service.ContentType(), buf.Bytes())
}

func (h *ResultHandler) params(c *gin.Context) (int64, int64, bool) {
	inventoryID, ok := h.ParamID(c, "id")
	if !ok {
		return 0, 0, false
	}
	warehouseID, ok := h.ParamID(c, "warehouse_id")
	if !ok {
		return 0, 0, false
	}
	return inventoryID, warehouseID, true
}
