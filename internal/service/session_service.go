package service

import (
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/util"
)

type SessionService struct {
	Config *config.SessionConfig
}

func NewSessionService(cfg *config.SessionConfig) *SessionService {
	return &SessionService{Config: cfg}
}

type SessionToken struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Create 为匿名测试者签发会话
func (s *SessionService) Create() (*SessionToken, error) {
	id := model.GenerateUUID()
	token, err := util.GenerateSessionToken(id, s.Config.Secret, s.Config.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &SessionToken{
		SessionID: id,
		Token:     token,
		ExpiresAt: time.Now().Add(s.Config.ExpireTime),
	}, nil
}
