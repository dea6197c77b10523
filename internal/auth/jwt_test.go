package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "test@example.com", "rider")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, email, userType, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" || email != "test@example.com" || userType != "rider" {
		t.Fatalf("claims round-trip failed: %s %s %s", userID, email, userType)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "test@example.com", "rider"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}
