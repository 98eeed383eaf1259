package utils

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateAccessToken(userID, "rajesh_manager", models.RoleManager, testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Subject != "rajesh_manager" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "rajesh_manager")
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleManager)
	}
	if claims.Issuer != AppName {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, AppName)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(primitive.NewObjectID(), "admin", models.RoleAdmin, testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ValidateToken(token, "another-secret"); err == nil {
		t.Fatal("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(primitive.NewObjectID(), "admin", models.RoleAdmin, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ValidateToken(token, testSecret); err == nil {
		t.Fatal("ValidateToken() accepted an expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", testSecret); err == nil {
		t.Fatal("ValidateToken() accepted garbage input")
	}
}
