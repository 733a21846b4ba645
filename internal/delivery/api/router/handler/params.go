// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"foodcritic/internal/delivery/api/response"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter into a positive identifier.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("%q is not a valid id", raw), "")
	}

	return id, nil
}

// idNotAllowed rejects create requests that already carry an identifier.
func idNotAllowed(c echo.Context, entityName string) error {
	return response.BadRequest(c, "ID_NOT_ALLOWED", fmt.Sprintf("A new %s cannot already have an id", entityName))
}

// lookupFailed renders a missing entity as "No X with the id N was found!" and
// everything else through the usual domain error mapping.
func lookupFailed(c echo.Context, err error, notFound *domainerrors.BaseError, entityName string, id int64) error {
	if errors.Is(err, notFound) {
		return response.NotFound(c, notFound.ErrorCode(), fmt.Sprintf("No %s with the id %d was found!", entityName, id))
	}

	return response.HandleAppError(c, err)
}
