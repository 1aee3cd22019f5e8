package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"modamart/internal/common"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type ReportHandlers struct {
	catalogService services.CatalogService
}

func NewReportHandlers(catalogService services.CatalogService) *ReportHandlers {
	return &ReportHandlers{catalogService: catalogService}
}

// GetCatalog serves the joined item/collection/designer/stock view.
func (h *ReportHandlers) GetCatalog(c echo.Context) error {
	entries, err := h.catalogService.Catalog(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build catalog")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"catalog": entries})
}

func (h *ReportHandlers) GetSaleDetails(c echo.Context) error {
	limit, offset := paginationParams(c)
	details, err := h.catalogService.SaleDetails(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sale details")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":  details,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *ReportHandlers) GetDesignerPerformance(c echo.Context) error {
	performances, err := h.catalogService.DesignerPerformance(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build designer performance")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"designers": performances})
}

func (h *ReportHandlers) GetTopSellingItems(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.catalogService.TopSellingItems(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list top sellers")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

// GetMonthlySalesReport defaults to the current month when none is given.
func (h *ReportHandlers) GetMonthlySalesReport(c echo.Context) error {
	storeID, err := uuid.Parse(c.QueryParam("store_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "store_id is required")
	}

	now := time.Now()
	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	rows, err := h.catalogService.MonthlySalesReport(c.Request().Context(), storeID, month, year)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"store_id": storeID,
		"month":    month,
		"year":     year,
		"rows":     rows,
	})
}

// GetItemCost returns fabric cost and profit margin for one item.
func (h *ReportHandlers) GetItemCost(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	cost, err := h.catalogService.ItemFabricCost(c.Request().Context(), itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "item")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute item cost")
	}
	return c.JSON(http.StatusOK, cost)
}
