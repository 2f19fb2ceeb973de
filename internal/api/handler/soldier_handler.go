package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/armydb/soldiers-api/internal/api/metrics"
	"github.com/armydb/soldiers-api/internal/core/domain"
	"github.com/armydb/soldiers-api/internal/core/ports"
)

// SoldierHandler handles HTTP requests for soldier operations.
type SoldierHandler struct {
	service ports.SoldierService
}

func NewSoldierHandler(service ports.SoldierService) *SoldierHandler {
	return &SoldierHandler{service: service}
}

// Create handles POST /soldiers. Returns the fully normalized record (both
// rank fields populated, limitations lowercased, timestamps set) with 201.
func (h *SoldierHandler) Create(c echo.Context) error {
	var req createSoldierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body must be a valid soldier payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	soldier, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.SoldiersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, soldier)
}

// Get handles GET /soldiers/:id.
func (h *SoldierHandler) Get(c echo.Context) error {
	id, err := soldierID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	soldier, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, soldier)
}

// List handles GET /soldiers. Always returns 200 with a (possibly empty)
// array; a filter matching nothing is not an error.
func (h *SoldierHandler) List(c echo.Context) error {
	filter, err := queryFilter(c.QueryParams())
	if err != nil {
		return badRequest(c, err.Error())
	}

	soldiers, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.SoldierQueriesTotal.Inc()
	return c.JSON(http.StatusOK, soldiers)
}

// Delete handles DELETE /soldiers/:id. 204 on success, 404 when absent.
func (h *SoldierHandler) Delete(c echo.Context) error {
	id, err := soldierID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}

	metrics.SoldiersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Update handles PATCH /soldiers/:id: merge semantics, only supplied fields
// change, updatedAt refreshed. Returns the updated record.
func (h *SoldierHandler) Update(c echo.Context) error {
	id, err := soldierID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req updateSoldierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body must be a valid partial soldier payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	soldier, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.SoldiersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, soldier)
}

// AppendLimitations handles PUT /soldiers/:id/limitations. The supplied
// values are lowercased and appended to the stored sequence; duplicates are
// kept. Returns the updated record.
func (h *SoldierHandler) AppendLimitations(c echo.Context) error {
	id, err := soldierID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req updateSoldierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "body must be a valid partial soldier payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Limitations == nil {
		return badRequest(c, "limitations is required")
	}

	soldier, err := h.service.AppendLimitations(c.Request().Context(), id, req.Limitations)
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.SoldiersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, soldier)
}

// soldierID extracts and validates the :id path parameter. A malformed id is
// a validation failure naming the field and pattern, never a 404. The error
// is returned unrendered so callers write exactly one response body.
func soldierID(c echo.Context) (string, error) {
	id := c.Param("id")
	if !idRegexp.MatchString(id) {
		return "", fmt.Errorf("id must match pattern %q", idPattern)
	}
	return id, nil
}

// mapError renders the outcome trichotomy: not-found and duplicate map to
// their dedicated statuses, rank resolution failures are client errors, and
// everything else is an opaque 500 (detail stays in server logs).
func (h *SoldierHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSoldierNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Soldier not found"})
	case errors.Is(err, domain.ErrDuplicateSoldier):
		return c.JSON(http.StatusConflict, errorResponse{Error: "Soldier already exists"})
	case errors.Is(err, domain.ErrUnknownRankName), errors.Is(err, domain.ErrUnknownRankValue):
		return badRequest(c, "rank: "+err.Error())
	default:
		return err
	}
}

// badRequest renders the validation-error envelope shared by every 400.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, validationErrorResponse{
		StatusCode: http.StatusBadRequest,
		Code:       "ERR_VALIDATION",
		Error:      "Bad Request",
		Message:    message,
	})
}
