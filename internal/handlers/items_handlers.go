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

type ItemHandlers struct {
	itemService services.ItemService
}

func NewItemHandlers(itemService services.ItemService) *ItemHandlers {
	return &ItemHandlers{itemService: itemService}
}

type CreateItemRequest struct {
	CollectionID uuid.UUID `json:"collection_id"`
	Name         string    `json:"name"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	Price        float64   `json:"price"`
	InitialStock int       `json:"initial_stock"`
	ReorderLevel int       `json:"reorder_level"`
}

// CreateItem creates the catalog entry and its inventory row together.
func (h *ItemHandlers) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	item := &models.ClothingItem{
		CollectionID: req.CollectionID,
		Name:         req.Name,
		Size:         req.Size,
		Color:        req.Color,
		Price:        req.Price,
	}
	if err := h.itemService.Create(c.Request().Context(), item, req.InitialStock, req.ReorderLevel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandlers) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	item, err := h.itemService.GetByID(c.Request().Context(), id)
	if errors.Is(err, common.ErrUnknownItem) {
		return common.SendNotFoundError(c, "item")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get item")
	}
	return c.JSON(http.StatusOK, item)
}

type UpdateItemRequest struct {
	CollectionID uuid.UUID `json:"collection_id"`
	Name         string    `json:"name"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	Price        float64   `json:"price"`
}

func (h *ItemHandlers) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	item := &models.ClothingItem{
		ID:           id,
		CollectionID: req.CollectionID,
		Name:         req.Name,
		Size:         req.Size,
		Color:        req.Color,
		Price:        req.Price,
	}
	if err := h.itemService.Update(c.Request().Context(), item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandlers) DeleteItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}
	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete item")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ItemHandlers) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	if collectionParam := c.QueryParam("collection_id"); collectionParam != "" {
		collectionID, err := uuid.Parse(collectionParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid collection id")
		}
		items, err := h.itemService.ListByCollection(ctx, collectionID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list items")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
	}

	limit, offset := paginationParams(c)
	items, err := h.itemService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list items")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// UploadItemImage accepts a multipart file and stores it in object storage.
func (h *ItemHandlers) UploadItemImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	objectName, err := h.itemService.UploadImage(c.Request().Context(), id, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, common.ErrUnknownItem) {
			return common.SendNotFoundError(c, "item")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
	}
	return c.JSON(http.StatusOK, map[string]string{"object": objectName})
}

// GetItemImageURL returns a short-lived presigned link to the item photo.
func (h *ItemHandlers) GetItemImageURL(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid item id")
	}

	url, err := h.itemService.ImageURL(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrUnknownItem) {
			return common.SendNotFoundError(c, "item")
		}
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
