package controllers

import (
	"fmt"
	"net/http"
	"time"

	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	analytics *services.AnalyticsService
}

func NewReportController(analytics *services.AnalyticsService) *ReportController {
	return &ReportController{analytics: analytics}
}

// GetOverview godoc
// @Summary      Dashboard figures
// @Tags         Reports
// @Security     BearerAuth
// @Router       /reports/overview [get]
func (ctrl *ReportController) GetOverview(c *gin.Context) {
	o, err := ctrl.analytics.Overview(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, o)
}

func (ctrl *ReportController) GetRevenueTrend(c *gin.Context) {
	trend, err := ctrl.analytics.RevenueTrend(c.Request.Context(), queryInt(c, "months", 6))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, trend)
}

func (ctrl *ReportController) GetInventoryUsage(c *gin.Context) {
	usage, err := ctrl.analytics.InventoryUsage(c.Request.Context(), queryInt(c, "limit", 10))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, usage)
}

// Export godoc
// @Summary      Download the report workbook
// @Tags         Reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Router       /reports/export [get]
func (ctrl *ReportController) Export(c *gin.Context) {
	data, err := ctrl.analytics.ExportXLSX(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	name := fmt.Sprintf("orion_report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
