package controllers

import (
	"orionhotel/dto"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	housekeeping *services.HousekeepingService
}

func NewHousekeepingController(housekeeping *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{housekeeping: housekeeping}
}

// GetTasks godoc
// @Summary      List housekeeping tasks
// @Tags         Housekeeping
// @Param        status query string false "PENDING, IN_PROGRESS, COMPLETED"
// @Security     BearerAuth
// @Router       /housekeeping/tasks [get]
func (ctrl *HousekeepingController) GetTasks(c *gin.Context) {
	tasks, err := ctrl.housekeeping.ListTasks(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tasks)
}

func (ctrl *HousekeepingController) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := ctrl.housekeeping.CreateTask(c.Request.Context(), req.RoomNumber, req.TaskType, req.AssignedStaffID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, task)
}

func (ctrl *HousekeepingController) AssignTask(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AssignStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := ctrl.housekeeping.AssignTask(c.Request.Context(), id, req.StaffID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, task)
}

// UpdateTaskStatus hoàn thành task cleaning sẽ trả phòng về AVAILABLE
func (ctrl *HousekeepingController) UpdateTaskStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := ctrl.housekeeping.UpdateTaskStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, task)
}

func (ctrl *HousekeepingController) GetMaintenance(c *gin.Context) {
	list, err := ctrl.housekeeping.ListMaintenance(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

// CreateMaintenance godoc
// @Summary      Report a maintenance issue, the room goes to MAINTENANCE
// @Tags         Housekeeping
// @Param        body body dto.MaintenanceRequest true "Issue"
// @Security     BearerAuth
// @Router       /maintenance [post]
func (ctrl *HousekeepingController) CreateMaintenance(c *gin.Context) {
	var req dto.MaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := ctrl.housekeeping.CreateMaintenanceRequest(c.Request.Context(), req.RoomNumber, req.IssueType, req.Description, req.Priority)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, m)
}

func (ctrl *HousekeepingController) AssignTechnician(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AssignStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := ctrl.housekeeping.AssignTechnician(c.Request.Context(), id, req.StaffID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, m)
}

func (ctrl *HousekeepingController) CompleteMaintenance(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	m, err := ctrl.housekeeping.CompleteMaintenance(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, m)
}
