package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingPeopleID     = errors.New("people_id é obrigatório para tokens de cliente")
	ErrSecretNotConfigured = errors.New("segredo de assinatura não configurado")
)

// AuthError carrega o código da API junto do erro de autenticação
type AuthError struct {
	Err    error
	Code   string
	Reason string // causa técnica, quando houver
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsTokenError indica se o token apresentado deve ser recusado com 401
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

func NewAuthError(err error, code string, reason string) *AuthError {
	return &AuthError{
		Err:    err,
		Code:   code,
		Reason: reason,
	}
}
