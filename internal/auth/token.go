// Package auth implements the admin access gate: an HMAC-signed bearer
// token carried in the admin URL. Tokens encode {"admin": true}, carry
// no expiry and stay valid until the secret is rotated. The design goal
// is a semi-permanent private link, not session security.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Gate verifies and issues admin tokens against a single shared secret.
type Gate struct {
	secret []byte
	parser *jwt.Parser
}

// NewGate creates a gate for the given shared secret.
func NewGate(secret string) *Gate {
	return &Gate{
		secret: []byte(secret),
		// Tokens are deliberately non-expiring, so claim validation
		// (exp/nbf) is skipped; the signature check still applies.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Verify reports whether token is a well-formed JWT signed with the
// gate's secret whose payload carries a truthy "admin" claim. Any
// structural or cryptographic failure yields false; nothing propagates
// past this boundary.
func (g *Gate) Verify(token string) bool {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return false
	}
	claims := jwt.MapClaims{}
	parsed, err := g.parser.ParseWithClaims(trimmed, claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return false
	}
	admin, ok := claims["admin"].(bool)
	return ok && admin
}

// Issue produces a fresh admin token. Offline/operator use only: it is
// never reachable through the HTTP surface.
func (g *Gate) Issue() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"admin": true})
	return token.SignedString(g.secret)
}
