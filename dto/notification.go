package dto

type NotificationRequest struct {
	Message    string `json:"message" binding:"required"`
	TargetRole string `json:"targetRole" binding:"required"`
}
