package backend

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// JWTInspector reads the exp claim of JWT access tokens without verifying
// the signature; the backend remains the authority on validity. Opaque
// tokens report no expiry.
type JWTInspector struct {
	parser *jwt.Parser
}

func NewJWTInspector() *JWTInspector {
	return &JWTInspector{parser: jwt.NewParser()}
}

func (i *JWTInspector) Expiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

var _ ports.TokenInspector = (*JWTInspector)(nil)
