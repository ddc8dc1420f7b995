// internals/middlewares/auth/claim_utils_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestValidateTokenExpiry(t *testing.T) {
	future := float64(time.Now().Add(time.Hour).Unix())
	past := float64(time.Now().Add(-time.Hour).Unix())

	if err := validateTokenExpiry(jwt.MapClaims{"exp": future}, 0); err != nil {
		t.Fatalf("future exp rejected: %v", err)
	}
	if err := validateTokenExpiry(jwt.MapClaims{"exp": past}, 0); err == nil {
		t.Fatal("expired token accepted")
	}
	if err := validateTokenExpiry(jwt.MapClaims{}, 0); err == nil {
		t.Fatal("token without exp accepted")
	}

	// small skew keeps a just-expired token alive
	justExpired := float64(time.Now().Add(-10 * time.Second).Unix())
	if err := validateTokenExpiry(jwt.MapClaims{"exp": justExpired}, 30*time.Second); err != nil {
		t.Fatalf("skew not applied: %v", err)
	}
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"sub": id.String()})
	if err != nil || got != id {
		t.Fatalf("sub claim: got %v, %v", got, err)
	}

	got, err = extractUserID(jwt.MapClaims{"user_id": id.String()})
	if err != nil || got != id {
		t.Fatalf("user_id fallback: got %v, %v", got, err)
	}

	if _, err := extractUserID(jwt.MapClaims{"sub": "not-a-uuid"}); err == nil {
		t.Fatal("malformed id accepted")
	}
	if _, err := extractUserID(jwt.MapClaims{}); err == nil {
		t.Fatal("missing id accepted")
	}
}

func TestExtractRole(t *testing.T) {
	if got := extractRole(jwt.MapClaims{"role": "teacher"}); got != "teacher" {
		t.Fatalf("flat claim: got %q", got)
	}
	nested := jwt.MapClaims{"metadata": map[string]any{"role": "admin"}}
	if got := extractRole(nested); got != "admin" {
		t.Fatalf("nested claim: got %q", got)
	}
	if got := extractRole(jwt.MapClaims{}); got != "" {
		t.Fatalf("missing claim: got %q", got)
	}
}
