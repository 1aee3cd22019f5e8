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

type DesignerHandlers struct {
	designerService services.DesignerService
}

func NewDesignerHandlers(designerService services.DesignerService) *DesignerHandlers {
	return &DesignerHandlers{designerService: designerService}
}

type DesignerRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Style *string `json:"style"`
}

func (h *DesignerHandlers) CreateDesigner(c echo.Context) error {
	var req DesignerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	designer := &models.Designer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Style: req.Style,
	}
	if err := h.designerService.Create(c.Request().Context(), designer); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create designer")
	}
	return c.JSON(http.StatusCreated, designer)
}

func (h *DesignerHandlers) GetDesigner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid designer id")
	}

	designer, err := h.designerService.GetByID(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "designer")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get designer")
	}
	return c.JSON(http.StatusOK, designer)
}

func (h *DesignerHandlers) UpdateDesigner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid designer id")
	}

	var req DesignerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	designer := &models.Designer{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Style: req.Style,
	}
	if err := h.designerService.Update(c.Request().Context(), designer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, designer)
}

// DeleteDesigner returns 409 when the designer still owns collections.
func (h *DesignerHandlers) DeleteDesigner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid designer id")
	}

	if err := h.designerService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrReferentialIntegrityViolation) {
			return common.SendConflictError(c, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete designer")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DesignerHandlers) ListDesigners(c echo.Context) error {
	limit, offset := paginationParams(c)
	designers, err := h.designerService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list designers")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"designers": designers,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *DesignerHandlers) GetPortfolio(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid designer id")
	}

	portfolio, err := h.designerService.Portfolio(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.SendNotFoundError(c, "designer")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build portfolio")
	}
	return c.JSON(http.StatusOK, portfolio)
}
