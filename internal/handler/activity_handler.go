package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktracker/internal/auth"
	"tasktracker/internal/errors"
	"tasktracker/internal/service"
)

// ActivityHandler handles activity log endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Recent godoc
// @Summary Latest activity entries for the caller
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Router /activity/recent [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}

	activities, err := h.activityService.RecentForUser(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, activities)
}
