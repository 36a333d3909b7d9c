package controllers

import (
	"orionhotel/dto"
	"orionhotel/middleware"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	staff *services.StaffService
}

func NewAuthController(staff *services.StaffService) *AuthController {
	return &AuthController{staff: staff}
}

func loginResponse(res *services.AuthResult) dto.LoginResponse {
	return dto.LoginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, Staff: dto.NewStaffResponse(res.Staff)}
}

// Login godoc
// @Summary      Staff login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginInput true "Credentials"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := ctrl.staff.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, loginResponse(res))
}

// GoogleLogin godoc
// @Summary      Staff login with a Google ID token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body dto.GoogleLoginInput true "Google ID token"
// @Success      200 {object} response.Response
// @Router       /auth/google [post]
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := ctrl.staff.AuthenticateGoogle(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, loginResponse(res))
}

// Logout godoc
// @Summary      Revoke the current token
// @Tags         Auth
// @Security     BearerAuth
// @Router       /auth/logout [delete]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.staff.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Profile trả thông tin nhân viên đang đăng nhập
func (ctrl *AuthController) Profile(c *gin.Context) {
	staff, err := ctrl.staff.GetStaff(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewStaffResponse(staff))
}

// ChangePassword đổi mật khẩu của chính mình
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := ctrl.staff.ChangePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
