package controllers

import (
	"time"

	"orionhotel/dto"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

func (ctrl *InventoryController) GetItems(c *gin.Context) {
	items, err := ctrl.inventory.ListItems(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, items)
}

func (ctrl *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ctrl.inventory.LowStockItems(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, items)
}

func (ctrl *InventoryController) CreateItem(c *gin.Context) {
	var req dto.InventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item := req.Model()
	if err := ctrl.inventory.AddItem(c.Request.Context(), item); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, item)
}

func (ctrl *InventoryController) GetItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	item, err := ctrl.inventory.GetItem(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateItem không đổi số lượng, dùng consume/restock cho việc đó
func (ctrl *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.InventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctrl.inventory.UpdateItem(c.Request.Context(), id, req.Model())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// Consume godoc
// @Summary      Take items out of stock
// @Tags         Inventory
// @Param        id path int true "Item ID"
// @Param        body body dto.QuantityRequest true "Quantity"
// @Security     BearerAuth
// @Failure      409 {object} response.Response "insufficient stock"
// @Router       /inventory/{id}/consume [post]
func (ctrl *InventoryController) Consume(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.QuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctrl.inventory.Consume(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl *InventoryController) Restock(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.QuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctrl.inventory.Restock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctrl *InventoryController) GetConsumption(c *gin.Context) {
	day, ok := queryDate(c, "date")
	if !ok {
		return
	}
	logs, err := ctrl.inventory.ConsumptionOn(c.Request.Context(), day)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, logs)
}

func (ctrl *InventoryController) GetRestocks(c *gin.Context) {
	now := time.Now()
	logs, err := ctrl.inventory.RestocksIn(c.Request.Context(), queryInt(c, "year", now.Year()), time.Month(queryInt(c, "month", int(now.Month()))))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, logs)
}

func (ctrl *InventoryController) GetMostUsed(c *gin.Context) {
	usage, err := ctrl.inventory.MostUsedItems(c.Request.Context(), queryInt(c, "limit", 5))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, usage)
}
