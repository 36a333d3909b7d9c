package dto

type TaskRequest struct {
	RoomNumber      int    `json:"roomNumber" binding:"required,gt=0"`
	TaskType        string `json:"taskType" binding:"required"`
	AssignedStaffID *uint  `json:"assignedStaffId"`
}

type AssignStaffRequest struct {
	StaffID uint `json:"staffId" binding:"required"`
}

type MaintenanceRequest struct {
	RoomNumber  int    `json:"roomNumber" binding:"required,gt=0"`
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
