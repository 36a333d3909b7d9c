package dto

import "orionhotel/models"

type InventoryItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Quantity int    `json:"quantity" binding:"gte=0"`
	MinLevel int    `json:"minLevel" binding:"gte=0"`
	Unit     string `json:"unit"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (r InventoryItemRequest) Model() *models.InventoryItem {
	return &models.InventoryItem{
		Name:     r.Name,
		Category: r.Category,
		Quantity: r.Quantity,
		MinLevel: r.MinLevel,
		Unit:     r.Unit,
	}
}
