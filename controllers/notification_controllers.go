package controllers

import (
	"orionhotel/dto"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications godoc
// @Summary      Notifications visible to the caller's role
// @Tags         Notifications
// @Param        unread query bool false "Only unread"
// @Security     BearerAuth
// @Router       /notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	list, err := ctrl.notifications.ListForRole(c.Request.Context(), currentRole(c), c.Query("unread") == "true")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (ctrl *NotificationController) SendNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := ctrl.notifications.Send(c.Request.Context(), req.Message, req.TargetRole)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, n)
}

func (ctrl *NotificationController) MarkAsRead(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.notifications.MarkAsRead(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctrl *NotificationController) MarkAllAsRead(c *gin.Context) {
	if err := ctrl.notifications.MarkAllAsRead(c.Request.Context(), currentRole(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctrl *NotificationController) ClearAll(c *gin.Context) {
	if err := ctrl.notifications.ClearAll(c.Request.Context(), currentRole(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
