package services

import (
	"context"
	"sync"
	"time"

	"orionhotel/errors"
	"orionhotel/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenService ký và kiểm tra JWT của nhân viên. Token bị thu hồi được lưu
// trên Redis tới khi hết hạn; không có Redis thì giữ trong bộ nhớ tiến trình.
type TokenService struct {
	secret []byte
	rdb    *redis.Client

	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewTokenService(secret string, rdb *redis.Client) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		rdb:     rdb,
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Issue tạo token cho nhân viên, hết hạn sau ttl
func (s *TokenService) Issue(staff *models.Staff, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserInfo: UserInfo{UserId: staff.ID, Role: staff.Role},
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
			Subject:   staff.Username,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse kiểm tra chữ ký, hạn dùng và trạng thái thu hồi của token
func (s *TokenService) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Thuật toán ký không hợp lệ", nil)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if claims.UserInfo.UserId == 0 || claims.UserInfo.Role == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	revoked, err := s.isRevoked(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token đã bị thu hồi", errors.ErrTokenRevoked)
	}
	return claims, nil
}

// Revoke thu hồi token cho tới khi nó tự hết hạn
func (s *TokenService) Revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Unix(claims.ExpiresAt, 0).Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if s.rdb != nil {
		return s.rdb.Set(ctx, revokedTokenPrefix+claims.Id, 1, ttl).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[claims.Id] = s.now().Add(ttl)
	return nil
}

func (s *TokenService) isRevoked(ctx context.Context, jti string) (bool, error) {
	if s.rdb != nil {
		n, err := s.rdb.Exists(ctx, revokedTokenPrefix+jti).Result()
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}
