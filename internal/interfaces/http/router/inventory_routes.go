package router

import (
	"github.com/wms/backend/internal/interfaces/http/handler"
)

// InventoryHandlers groups the handlers of the inventory API
type InventoryHandlers struct {
	Inventory      *handler.InventoryHandler
	Lifecycle      *handler.LifecycleHandler
	CountingDetail *handler.CountingDetailHandler
	Ecart          *handler.EcartHandler
	Result         *handler.ResultHandler
}

// InventoryRoutes builds the route groups of the inventory API
func InventoryRoutes(h InventoryHandlers) []RouteRegistrar {
	inventories := NewDomainGroup("inventories", "/inventories").
		POST("", h.Inventory.Create).
		POST("/validate-countings", h.Inventory.ValidateCountings).
		GET("", h.Inventory.List).
		GET("/:id", h.Inventory.GetByID).
		PUT("/:id", h.Inventory.Update).
		DELETE("/:id", h.Inventory.Delete).
		GET("/:id/launch-check", h.Lifecycle.CheckLaunch).
		POST("/:id/launch", h.Lifecycle.Launch).
		POST("/:id/cancel", h.Lifecycle.Cancel).
		POST("/:id/complete", h.Lifecycle.Complete).
		POST("/:id/close", h.Lifecycle.Close).
		GET("/:id/ecarts", h.Ecart.ListByInventory).
		GET("/:id/warehouses/:warehouse_id/results", h.Result.List).
		GET("/:id/warehouses/:warehouse_id/results/export", h.Result.Export)

	countingDetails := NewDomainGroup("counting-details", "/counting-details").
		POST("", h.CountingDetail.Record)

	ecarts := NewDomainGroup("ecarts", "/ecarts").
		GET("/:id", h.Ecart.GetByID).
		PUT("/:id/final-result", h.Ecart.SetFinalResult).
		POST("/:id/resolve", h.Ecart.Resolve)

	return []RouteRegistrar{inventories, countingDetails, ecarts}
}
