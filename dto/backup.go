package dto

type BackupRequest struct {
	Name string `json:"name" binding:"required"`
}
