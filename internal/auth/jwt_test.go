package auth

import (
	"testing"

	"mumanager-backend/internal/config"
	"mumanager-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "mumanager-test"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testConfig("test-secret"))
	user := &models.User{ID: 42, Email: "jane@example.com"}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned an empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Issuer != "mumanager-test" {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, "mumanager-test")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(&models.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := NewJWTManager(testConfig("secret-b")).ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(testConfig("secret")).ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted a malformed token")
	}
}
