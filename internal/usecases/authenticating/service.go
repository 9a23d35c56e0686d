package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Authenticator emite e valida os tokens de incorporação do painel
type Authenticator interface {
	GenerateToken(peopleID string, admin bool) (*domain.TokenResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(cfg config.Auth) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		secretKey: cfg.Secret,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

func (s *Service) GenerateToken(peopleID string, admin bool) (*domain.TokenResponse, error) {
	if s.secretKey == "" {
		return nil, NewAuthError(ErrSecretNotConfigured, apiErrors.ErrInternalServer, "")
	}
	if peopleID == "" && !admin {
		return nil, NewAuthError(ErrMissingPeopleID, apiErrors.ErrMissingRequiredData, "")
	}

	expiresAt := s.now().Add(s.tokenTTL)
	claims := domain.Claims{
		PeopleID: peopleID,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao assinar token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"people_id": peopleID,
		"admin":     admin,
	}).Info("Token de incorporação emitido")

	return &domain.TokenResponse{Token: signed, ExpiresAt: expiresAt.Unix()}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
