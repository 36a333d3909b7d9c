package controllers

import (
	"orionhotel/dto"
	"orionhotel/models"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *services.SettingsService
	backups  *services.BackupService
}

func NewSettingsController(settings *services.SettingsService, backups *services.BackupService) *SettingsController {
	return &SettingsController{settings: settings, backups: backups}
}

func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	s, err := ctrl.settings.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, s)
}

// UpdateSettings godoc
// @Summary      Replace system settings
// @Tags         Settings
// @Param        body body models.SystemSettings true "Settings"
// @Security     BearerAuth
// @Router       /settings [put]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var req models.SystemSettings
	if !bindJSON(c, &req) {
		return
	}
	if err := ctrl.settings.Update(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	s, err := ctrl.settings.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, s)
}

func (ctrl *SettingsController) CreateBackup(c *gin.Context) {
	info, err := ctrl.backups.CreateBackup(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, info)
}

func (ctrl *SettingsController) GetBackups(c *gin.Context) {
	list, err := ctrl.backups.History()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (ctrl *SettingsController) RestoreBackup(c *gin.Context) {
	var req dto.BackupRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := ctrl.backups.Restore(req.Name); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
