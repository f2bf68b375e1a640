package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestVerifyIssuedToken(t *testing.T) {
	gate := NewGate("test-secret")
	token, err := gate.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if !gate.Verify(token) {
		t.Fatal("expected issued token to verify")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	gate := NewGate("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace only", "   \t"},
		{"garbage", "garbage"},
		{"structurally jwt-like", "aaa.bbb.ccc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if gate.Verify(tt.token) {
				t.Errorf("expected Verify(%q) to be false", tt.token)
			}
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewGate("other-secret").Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if NewGate("test-secret").Verify(token) {
		t.Fatal("expected token signed with a different secret to fail")
	}
}

func TestVerifyRequiresAdminClaim(t *testing.T) {
	secret := "test-secret"
	gate := NewGate(secret)

	sign := func(claims jwt.MapClaims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return signed
	}

	if gate.Verify(sign(jwt.MapClaims{})) {
		t.Error("expected token without admin claim to fail")
	}
	if gate.Verify(sign(jwt.MapClaims{"admin": false})) {
		t.Error("expected admin=false to fail")
	}
	if gate.Verify(sign(jwt.MapClaims{"admin": "true"})) {
		t.Error("expected non-boolean admin claim to fail")
	}
	if !gate.Verify(sign(jwt.MapClaims{"admin": true})) {
		t.Error("expected admin=true to verify")
	}
}

func TestVerifyIgnoresExpiry(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if !NewGate(secret).Verify(signed) {
		t.Fatal("expired tokens must still verify: expiry is deliberately not checked")
	}
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none style tokens must fail closed.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"admin": true})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if NewGate("test-secret").Verify(token) {
		t.Fatal("expected alg=none token to fail")
	}
}
