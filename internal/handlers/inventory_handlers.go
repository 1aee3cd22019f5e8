package handlers

import (
	"errors"
	"net/http"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

type CreateInventoryRequest struct {
	ItemID          uuid.UUID `json:"item_id"`
	QuantityInStock int       `json:"quantity_in_stock"`
	ReorderLevel    int       `json:"reorder_level"`
}

func (h *InventoryHandlers) CreateInventory(c echo.Context) error {
	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	inventory := &models.Inventory{
		ItemID:          req.ItemID,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    req.ReorderLevel,
	}
	if err := h.inventoryService.Create(c.Request().Context(), inventory); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inventory)
}

func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	inventory, err := h.inventoryService.GetByItemID(c.Request().Context(), itemID)
	if errors.Is(err, common.ErrUnknownInventoryRecord) {
		return common.SendNotFoundError(c, "inventory record")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get inventory")
	}
	return c.JSON(http.StatusOK, inventory)
}

func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	limit, offset := paginationParams(c)
	inventories, err := h.inventoryService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list inventory")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": inventories,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *InventoryHandlers) ListLowStock(c echo.Context) error {
	inventories, err := h.inventoryService.LowStock(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list low stock")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"inventory": inventories})
}

type AdjustInventoryRequest struct {
	Delta int `json:"delta"`
}

// AdjustInventory applies a manual stock correction through the ledger, so
// the alert check runs like any other update.
func (h *InventoryHandlers) AdjustInventory(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	var req AdjustInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Delta == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Delta must be non-zero")
	}

	newQuantity, err := h.inventoryService.ApplyDelta(c.Request().Context(), itemID, req.Delta)
	if err != nil {
		if errors.Is(err, common.ErrUnknownInventoryRecord) {
			return common.SendNotFoundError(c, "inventory record")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to adjust inventory")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"item_id":           itemID,
		"quantity_in_stock": newQuantity,
	})
}
