// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"ecomarket/internal/cache"
	"ecomarket/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionKeyPrefix = "session:"

var (
	ErrInvalidSession  = errors.New("invalid session token")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	timeNow         = time.Now
	newSessionID    = uuid.NewString
	jsonMarshal     = json.Marshal
	parseWithClaims = jwt.ParseWithClaims
)

// SessionData 存在 redis 的 session 內容
type SessionData struct {
	UserID   int       `json:"user_id"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionClaims 放在 cookie 內的 JWT 負載；ID (jti) 即 session id
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager 以 redis 保存 session，瀏覽器端只持有簽章過的 JWT
type SessionManager struct {
	cache  cache.Cache
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(c cache.Cache, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{cache: c, secret: []byte(secret), ttl: ttl}
}

func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue 建立新的 session 並回傳要放進 cookie 的 token
func (m *SessionManager) Issue(ctx context.Context, user model.User) (string, error) {
	now := timeNow()
	sid := newSessionID()

	data, err := jsonMarshal(SessionData{UserID: user.ID, Username: user.Username, IssuedAt: now.UTC()})
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}
	if err := m.cache.Set(ctx, sessionKeyPrefix+sid, data, m.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "store session")
	}

	claims := SessionClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session")
	}
	return token, nil
}

// Resolve 驗證 token 並讀回 session；已撤銷或過期時回傳 ErrSessionNotFound
func (m *SessionManager) Resolve(ctx context.Context, token string) (*SessionData, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	raw, err := m.cache.Get(ctx, sessionKeyPrefix+claims.ID).Bytes()
	if cache.IsMiss(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &data, nil
}

// Revoke 刪除 session；無法解析的 token 直接忽略
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	if err := m.cache.Del(ctx, sessionKeyPrefix+claims.ID).Err(); err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

func (m *SessionManager) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := parseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(timeNow))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
