package models

import (
	"time"

	"orionhotel/constants"
)

type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Message    string    `json:"message" gorm:"not null"`
	TargetRole string    `json:"targetRole" gorm:"size:20;not null;index"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

// VisibleTo: thông báo gửi ALL hiển thị cho mọi role
func (n *Notification) VisibleTo(role string) bool {
	return n.TargetRole == constants.TargetAll || n.TargetRole == role
}
