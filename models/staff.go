package models

import (
	"time"

	"orionhotel/constants"
)

type Staff struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FullName     string     `json:"fullName" gorm:"size:100"`
	Role         string     `json:"role" gorm:"size:20;not null;index"`
	Email        string     `json:"email" gorm:"size:100;index"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Status       string     `json:"status" gorm:"size:20;not null"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	LastLogin    *time.Time `json:"lastLogin"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) IsActive() bool {
	return s.Status == constants.StaffStatusActive
}

func (s *Staff) HasPermission(required string) bool {
	return HasPermission(s.Role, required)
}

// HasPermission: ADMIN luôn có quyền, các role khác phải trùng khớp
func HasPermission(role, required string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return role == required
}
