// Package handler contains the HTTP handlers for the admin API.
package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed. The usecase layer clamps paging values anyway.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

// queryUUID parses an optional UUID query parameter, returning nil when
// absent or malformed.
func queryUUID(c echo.Context, name string) *uuid.UUID {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}
