package services

import (
	"context"
	"fmt"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
	"orionhotel/services/notification"
)

// Notifier là phần các service khác cần để gửi thông báo
type Notifier interface {
	Send(ctx context.Context, message, targetRole string) (*models.Notification, error)
}

type NotificationService struct {
	repo   repository.NotificationRepository
	pusher notification.Service
	logger logger.Logger
}

type NotificationServiceOptions struct {
	Repo   repository.NotificationRepository
	Pusher notification.Service
	Logger logger.Logger
}

func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &NotificationService{repo: opts.Repo, pusher: opts.Pusher, logger: opts.Logger}
}

// Send lưu thông báo rồi đẩy qua websocket. Lỗi đẩy websocket chỉ được log,
// thông báo vẫn nằm trong DB để nhân viên xem lại.
func (s *NotificationService) Send(ctx context.Context, message, targetRole string) (*models.Notification, error) {
	if message == "" {
		return nil, validationError("Nội dung thông báo là bắt buộc")
	}
	if !constants.IsOneOf(targetRole, constants.NotificationTargets) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRole, fmt.Sprintf("Đối tượng nhận không hợp lệ: %s", targetRole), errors.ErrInvalidInput)
	}

	n := &models.Notification{Message: message, TargetRole: targetRole}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, wrapRepoError(err, nil, "thông báo")
	}

	if s.pusher != nil {
		payload, err := notification.NewMessageBuilder(*n).Build()
		if err == nil {
			err = s.pusher.SendToRole(targetRole, payload)
		}
		if err != nil {
			s.logger.Error("❌ Lỗi gửi thông báo websocket %d: %v", n.ID, err)
		}
	}
	s.logger.Info("Đã gửi thông báo tới %s: %s", targetRole, message)
	return n, nil
}

func (s *NotificationService) ListForRole(ctx context.Context, role string, unreadOnly bool) ([]models.Notification, error) {
	list, err := s.repo.ListForRole(ctx, role, unreadOnly)
	if err != nil {
		return nil, wrapRepoError(err, nil, "thông báo")
	}
	return list, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uint) error {
	return wrapRepoError(s.repo.MarkAsRead(ctx, id), nil, fmt.Sprintf("thông báo %d", id))
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, role string) error {
	return wrapRepoError(s.repo.MarkAllAsRead(ctx, role), nil, "thông báo")
}

func (s *NotificationService) ClearAll(ctx context.Context, role string) error {
	return wrapRepoError(s.repo.ClearAll(ctx, role), nil, "thông báo")
}
