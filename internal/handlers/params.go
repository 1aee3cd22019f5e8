package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 20

// paginationParams reads limit/offset query params with sane bounds.
func paginationParams(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
