package dto

import (
	"time"

	"orionhotel/models"
)

type StaffRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type StaffResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (r StaffRequest) Model() *models.Staff {
	return &models.Staff{
		Username: r.Username,
		FullName: r.FullName,
		Role:     r.Role,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

func NewStaffResponse(s *models.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Username:  s.Username,
		FullName:  s.FullName,
		Role:      s.Role,
		Email:     s.Email,
		Phone:     s.Phone,
		Status:    s.Status,
		LastLogin: s.LastLogin,
		CreatedAt: s.CreatedAt,
	}
}

func NewStaffResponses(list []models.Staff) []StaffResponse {
	out := make([]StaffResponse, 0, len(list))
	for i := range list {
		out = append(out, NewStaffResponse(&list[i]))
	}
	return out
}
