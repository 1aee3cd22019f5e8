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

type StoreHandlers struct {
	storeService services.StoreService
}

func NewStoreHandlers(storeService services.StoreService) *StoreHandlers {
	return &StoreHandlers{storeService: storeService}
}

type StoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (h *StoreHandlers) CreateStore(c echo.Context) error {
	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	store := &models.Store{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := h.storeService.Create(c.Request().Context(), store); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, store)
}

func (h *StoreHandlers) GetStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid store id")
	}

	store, err := h.storeService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "store")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get store")
	}
	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandlers) UpdateStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid store id")
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	store := &models.Store{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
	}
	if err := h.storeService.Update(c.Request().Context(), store); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandlers) DeleteStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid store id")
	}
	if err := h.storeService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete store")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StoreHandlers) ListStores(c echo.Context) error {
	limit, offset := paginationParams(c)
	stores, err := h.storeService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list stores")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stores": stores,
		"limit":  limit,
		"offset": offset,
	})
}
