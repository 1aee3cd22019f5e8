package handlers

import (
	"errors"
	"net/http"
	"time"

	"modamart/internal/common"
	"modamart/internal/models"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type PurchaseOrderHandlers struct {
	poService services.PurchaseOrderService
}

func NewPurchaseOrderHandlers(poService services.PurchaseOrderService) *PurchaseOrderHandlers {
	return &PurchaseOrderHandlers{poService: poService}
}

type CreatePurchaseOrderRequest struct {
	ItemID           uuid.UUID  `json:"item_id"`
	SupplierID       uuid.UUID  `json:"supplier_id"`
	QuantityOrdered  int        `json:"quantity_ordered"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Notes            *string    `json:"notes"`
}

func (h *PurchaseOrderHandlers) CreatePurchaseOrder(c echo.Context) error {
	var req CreatePurchaseOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	po := &models.PurchaseOrder{
		ItemID:          req.ItemID,
		SupplierID:      req.SupplierID,
		QuantityOrdered: req.QuantityOrdered,
		Notes:           req.Notes,
	}
	if req.ExpectedDelivery != nil {
		po.ExpectedDelivery = *req.ExpectedDelivery
	}
	if err := h.poService.Create(c.Request().Context(), po); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, po)
}

type CreateFromAlertRequest struct {
	AlertID uuid.UUID `json:"alert_id"`
}

// CreateFromAlert raises a restock order for the alerted item with the
// cheapest fabric supplier.
func (h *PurchaseOrderHandlers) CreateFromAlert(c echo.Context) error {
	var req CreateFromAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	po, err := h.poService.CreateFromAlert(c.Request().Context(), req.AlertID)
	if err != nil {
		if errors.Is(err, common.ErrUnknownInventoryRecord) {
			return common.SendNotFoundError(c, "inventory record")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, po)
}

func (h *PurchaseOrderHandlers) GetPurchaseOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase order id")
	}

	po, err := h.poService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "purchase order")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get purchase order")
	}
	return c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandlers) ListPurchaseOrders(c echo.Context) error {
	limit, offset := paginationParams(c)
	orders, err := h.poService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list purchase orders")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"purchase_orders": orders,
		"limit":           limit,
		"offset":          offset,
	})
}

// ReceivePurchaseOrder restocks the item and closes the order.
func (h *PurchaseOrderHandlers) ReceivePurchaseOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase order id")
	}

	if err := h.poService.Receive(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "purchase order")
		}
		return common.SendConflictError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PurchaseOrderHandlers) CancelPurchaseOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid purchase order id")
	}

	if err := h.poService.Cancel(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "purchase order")
		}
		return common.SendConflictError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
