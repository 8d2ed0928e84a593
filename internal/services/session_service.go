package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const sessionIssuer = "fintrack"

// sessionService stores sessions server-side and hands out HS256 tokens that
// reference them.
type sessionService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionServicer signing with secret.
func NewSessionService(db *gorm.DB, secret string, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue records a new session for user and returns its signed token.
func (s *sessionService) Issue(user *models.User, userAgent, ipAddress string) (string, *models.Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := s.now()
	session := &models.Session{
		ID:        id.String(),
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token, session, nil
}

// Validate checks the token signature and that its session is still active.
func (s *sessionService) Validate(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var session models.Session
	if err := s.db.Where("id = ?", claims.ID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if session.UserID != claims.UserID || !session.Active(s.now()) {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// Revoke ends a session. Revoking an unknown or already revoked session is a no-op.
func (s *sessionService) Revoke(sessionID string) error {
	now := s.now()
	err := s.db.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", &now).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
