package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals the plain password")
	}

	if !CheckPassword("admin123", hash) {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("secret99", 0)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword("secret99", hash) {
		t.Error("CheckPassword() rejected a password hashed with the default cost")
	}
}
