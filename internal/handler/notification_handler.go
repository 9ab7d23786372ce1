package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the global notification feed.
type NotificationHandler struct{}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Notification represents one entry in the global feed.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// The feed is a canned announcement list, not per-user state.
var globalNotifications = []Notification{
	{
		Title:   "Project for UP",
		Message: "New project is available for Client A",
		Type:    "info",
	},
	{
		Title:   "Project for Mumbai",
		Message: "New project is available for Client B",
		Type:    "warning",
	},
	{
		Title:   "Project for Pune",
		Message: "New project is available for Client C",
		Type:    "success",
	},
}

// List godoc
// @Summary Global notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Notification
// @Failure 401 {object} errors.ErrorResponse
// @Router /notification [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, globalNotifications)
}
