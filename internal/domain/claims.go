package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token de incorporação do painel. Admin acessa qualquer cliente.
type Claims struct {
	PeopleID string `json:"people_id,omitempty"`
	Admin    bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// CanAccess indica se o token libera o painel do cliente informado
func (c *Claims) CanAccess(peopleID string) bool {
	return c.Admin || (c.PeopleID != "" && c.PeopleID == peopleID)
}

type TokenRequest struct {
	Admin bool `json:"admin"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
