package notification

import (
	"fmt"
	"time"

	"orionhotel/constants"
	"orionhotel/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Các key lưu trên melody session khi nhân viên kết nối websocket
const (
	SessionRoleKey  = "role"
	SessionStaffKey = "staffId"
)

type Service interface {
	SendMessage(message string) error
	SendToRole(role string, payload []byte) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// SendToRole chỉ gửi cho các session có role trùng khớp. Target ALL gửi cho tất cả.
func (s *MelodyService) SendToRole(role string, payload []byte) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	if role == constants.TargetAll {
		return s.m.Broadcast(payload)
	}
	return s.m.BroadcastFilter(payload, func(session *melody.Session) bool {
		v, ok := session.Get(SessionRoleKey)
		return ok && v == role
	})
}

// Message là payload đẩy qua websocket
type Message struct {
	Type       string    `json:"type"`
	ID         uint      `json:"id"`
	Message    string    `json:"message"`
	TargetRole string    `json:"targetRole"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MessageBuilder struct {
	n models.Notification
}

func NewMessageBuilder(n models.Notification) *MessageBuilder {
	return &MessageBuilder{n: n}
}

func (b *MessageBuilder) Build() ([]byte, error) {
	return json.Marshal(Message{
		Type:       "notification",
		ID:         b.n.ID,
		Message:    b.n.Message,
		TargetRole: b.n.TargetRole,
		CreatedAt:  b.n.CreatedAt,
	})
}
