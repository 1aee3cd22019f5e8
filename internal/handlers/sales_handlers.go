package handlers

import (
	"errors"
	"net/http"
	"time"

	"modamart/internal/common"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type SaleHandlers struct {
	saleService services.SaleService
}

func NewSaleHandlers(saleService services.SaleService) *SaleHandlers {
	return &SaleHandlers{saleService: saleService}
}

type ProcessSaleRequest struct {
	ItemID   uuid.UUID  `json:"item_id"`
	StoreID  uuid.UUID  `json:"store_id"`
	Quantity int        `json:"quantity"`
	Payment  string     `json:"payment"`
	SaleDate *time.Time `json:"sale_date"`
}

// ProcessSale maps the processor's failures onto HTTP statuses: unknown
// item or store is 404, insufficient stock is 409, a missing inventory row
// is a data defect and stays 500.
func (h *SaleHandlers) ProcessSale(c echo.Context) error {
	var req ProcessSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be positive")
	}

	saleReq := services.SaleRequest{
		ItemID:   req.ItemID,
		StoreID:  req.StoreID,
		Quantity: req.Quantity,
		Payment:  req.Payment,
	}
	if req.SaleDate != nil {
		saleReq.SaleDate = *req.SaleDate
	}

	sale, err := h.saleService.ProcessSale(c.Request().Context(), saleReq)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownItem):
			return common.SendNotFoundError(c, "item")
		case errors.Is(err, common.ErrUnknownStore):
			return common.SendNotFoundError(c, "store")
		case errors.Is(err, common.ErrInsufficientStock):
			return common.SendConflictError(c, err.Error())
		case errors.Is(err, common.ErrUnknownInventoryRecord):
			return echo.NewHTTPError(http.StatusInternalServerError, "Item has no inventory record")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process sale")
		}
	}
	return c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandlers) GetSale(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sale id")
	}

	sale, err := h.saleService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "sale")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get sale")
	}
	return c.JSON(http.StatusOK, sale)
}

func (h *SaleHandlers) ListSales(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := paginationParams(c)

	if storeParam := c.QueryParam("store_id"); storeParam != "" {
		storeID, err := uuid.Parse(storeParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid store id")
		}
		sales, err := h.saleService.ListByStore(ctx, storeID, limit, offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"sales":  sales,
			"limit":  limit,
			"offset": offset,
		})
	}

	sales, err := h.saleService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sales")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":  sales,
		"limit":  limit,
		"offset": offset,
	})
}
