package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// idParam parses a positive numeric path parameter.
func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// pageQuery reads page, search, type and ministry_id query parameters.
// Malformed numbers fall back to their defaults.
func pageQuery(c echo.Context) domain.PageQuery {
	q := domain.PageQuery{Search: c.QueryParam("search"), Type: c.QueryParam("type")}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = p
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if raw := c.QueryParam("ministry_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.MinistryID = &id
		}
	}
	return q
}
