package models

import (
	"fmt"
	"time"

	"orionhotel/constants"
)

type HousekeepingTask struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	RoomNumber      int        `json:"roomNumber" gorm:"not null;index"`
	TaskType        string     `json:"taskType" gorm:"size:20;not null"`
	Status          string     `json:"status" gorm:"size:20;not null;index"`
	AssignedStaffID *uint      `json:"assignedStaffId"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (t *HousekeepingTask) ValidateStatus() error {
	if !constants.IsOneOf(t.Status, constants.TaskStatuses) {
		return fmt.Errorf("invalid task status: %q", t.Status)
	}
	return nil
}

type MaintenanceRequest struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	RoomNumber           int        `json:"roomNumber" gorm:"not null;index"`
	IssueType            string     `json:"issueType" gorm:"size:20;not null"`
	Description          string     `json:"description"`
	Priority             string     `json:"priority" gorm:"size:10;not null"`
	Status               string     `json:"status" gorm:"size:20;not null;index"`
	AssignedTechnicianID *uint      `json:"assignedTechnicianId"`
	CreatedAt            time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	ResolvedAt           *time.Time `json:"resolvedAt"`
}

func (m *MaintenanceRequest) ValidateStatus() error {
	if !constants.IsOneOf(m.Status, constants.MaintenanceStatuses) {
		return fmt.Errorf("invalid maintenance status: %q", m.Status)
	}
	return nil
}
