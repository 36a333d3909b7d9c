package controllers

import (
	"orionhotel/dto"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{staff: staff}
}

// GetStaff godoc
// @Summary      List staff accounts
// @Tags         Staff
// @Param        active query bool false "Only active accounts"
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Page size, default 10"
// @Security     BearerAuth
// @Router       /staff [get]
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	list, err := ctrl.staff.ListStaff(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, current, limit := dto.Paginate(dto.NewStaffResponses(list), queryInt(c, "page", 1), queryInt(c, "limit", 10))
	response.SuccessWithPagination(c, page, current, limit, len(list))
}

func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var req dto.StaffRequest
	if !bindJSON(c, &req) {
		return
	}
	staff := req.Model()
	if err := ctrl.staff.AddStaff(c.Request.Context(), staff, req.Password); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, dto.NewStaffResponse(staff))
}

func (ctrl *StaffController) GetStaffDetail(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	staff, err := ctrl.staff.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewStaffResponse(staff))
}

func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.StaffRequest
	if !bindJSON(c, &req) {
		return
	}
	staff, err := ctrl.staff.UpdateStaff(c.Request.Context(), id, req.Model())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewStaffResponse(staff))
}

func (ctrl *StaffController) DeactivateStaff(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if id == currentUserID(c) {
		response.BadRequest(c, "Không thể tự khóa tài khoản của mình")
		return
	}
	if err := ctrl.staff.Deactivate(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctrl *StaffController) RoleCounts(c *gin.Context) {
	counts, err := ctrl.staff.RoleCounts(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, counts)
}
