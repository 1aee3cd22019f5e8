package handlers

import (
	"errors"
	"net/http"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type FabricHandlers struct {
	fabricService services.FabricService
}

func NewFabricHandlers(fabricService services.FabricService) *FabricHandlers {
	return &FabricHandlers{fabricService: fabricService}
}

type FabricRequest struct {
	Material     string    `json:"material"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	CostPerMeter float64   `json:"cost_per_meter"`
}

func (h *FabricHandlers) CreateFabric(c echo.Context) error {
	var req FabricRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	fabric := &models.Fabric{
		Material:     req.Material,
		SupplierID:   req.SupplierID,
		CostPerMeter: req.CostPerMeter,
	}
	if err := h.fabricService.Create(c.Request().Context(), fabric); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, fabric)
}

func (h *FabricHandlers) GetFabric(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid fabric id")
	}

	fabric, err := h.fabricService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "fabric")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get fabric")
	}
	return c.JSON(http.StatusOK, fabric)
}

func (h *FabricHandlers) UpdateFabric(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid fabric id")
	}

	var req FabricRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	fabric := &models.Fabric{
		ID:           id,
		Material:     req.Material,
		SupplierID:   req.SupplierID,
		CostPerMeter: req.CostPerMeter,
	}
	if err := h.fabricService.Update(c.Request().Context(), fabric); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, fabric)
}

func (h *FabricHandlers) DeleteFabric(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid fabric id")
	}
	if err := h.fabricService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete fabric")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FabricHandlers) ListFabrics(c echo.Context) error {
	limit, offset := paginationParams(c)
	fabrics, err := h.fabricService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list fabrics")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fabrics": fabrics,
		"limit":   limit,
		"offset":  offset,
	})
}

type FabricUsageRequest struct {
	ItemID     uuid.UUID `json:"item_id"`
	FabricID   uuid.UUID `json:"fabric_id"`
	MetersUsed float64   `json:"meters_used"`
}

// RecordUsage links a fabric to an item with the meters consumed.
func (h *FabricHandlers) RecordUsage(c echo.Context) error {
	var req FabricUsageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	usage := &models.FabricUsage{
		ItemID:     req.ItemID,
		FabricID:   req.FabricID,
		MetersUsed: req.MetersUsed,
	}
	if err := h.fabricService.RecordUsage(c.Request().Context(), usage); err != nil {
		if errors.Is(err, common.ErrUnknownItem) {
			return common.SendNotFoundError(c, "item")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, usage)
}

func (h *FabricHandlers) ListUsageByItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	usages, err := h.fabricService.UsageByItem(c.Request().Context(), itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list fabric usage")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"usage": usages})
}
