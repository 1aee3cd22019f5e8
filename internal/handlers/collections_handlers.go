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

type CollectionHandlers struct {
	collectionService services.CollectionService
}

func NewCollectionHandlers(collectionService services.CollectionService) *CollectionHandlers {
	return &CollectionHandlers{collectionService: collectionService}
}

type CollectionRequest struct {
	Name       string    `json:"name"`
	Season     string    `json:"season"`
	Year       int       `json:"year"`
	DesignerID uuid.UUID `json:"designer_id"`
}

func (h *CollectionHandlers) CreateCollection(c echo.Context) error {
	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	collection := &models.Collection{
		Name:       req.Name,
		Season:     req.Season,
		Year:       req.Year,
		DesignerID: req.DesignerID,
	}
	if err := h.collectionService.Create(c.Request().Context(), collection); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, collection)
}

func (h *CollectionHandlers) GetCollection(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid collection id")
	}

	collection, err := h.collectionService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "collection")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get collection")
	}
	return c.JSON(http.StatusOK, collection)
}

func (h *CollectionHandlers) UpdateCollection(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid collection id")
	}

	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	collection := &models.Collection{
		ID:         id,
		Name:       req.Name,
		Season:     req.Season,
		Year:       req.Year,
		DesignerID: req.DesignerID,
	}
	if err := h.collectionService.Update(c.Request().Context(), collection); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, collection)
}

func (h *CollectionHandlers) DeleteCollection(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid collection id")
	}

	if err := h.collectionService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrReferentialIntegrityViolation) {
			return common.SendConflictError(c, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete collection")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CollectionHandlers) ListCollections(c echo.Context) error {
	ctx := c.Request().Context()

	if designerParam := c.QueryParam("designer_id"); designerParam != "" {
		designerID, err := uuid.Parse(designerParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid designer id")
		}
		collections, err := h.collectionService.ListByDesigner(ctx, designerID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list collections")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"collections": collections})
	}

	limit, offset := paginationParams(c)
	collections, err := h.collectionService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list collections")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"collections": collections,
		"limit":       limit,
		"offset":      offset,
	})
}
