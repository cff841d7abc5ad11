package services

import (
	"errors"
	"testing"

	"infohub/internal/apperrors"
)

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	db := openTestDB(t, "svc_register_first")
	svc := NewUserService(db)

	first, firstAdmin, err := svc.Register("alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if !firstAdmin || !first.IsAdmin {
		t.Fatalf("first registrant should be admin, got flag=%v user=%v", firstAdmin, first.IsAdmin)
	}

	second, secondAdmin, err := svc.Register("bob", "", "secret")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if secondAdmin || second.IsAdmin {
		t.Fatal("second registrant should not be admin")
	}
	if second.Email != nil {
		t.Fatal("empty email should be stored as null")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t, "svc_register_validation")
	svc := NewUserService(db)

	if _, _, err := svc.Register("", "", "secret"); !apperrors.IsValidation(err) {
		t.Fatalf("missing username: expected validation error, got %v", err)
	}
	if _, _, err := svc.Register("carol", "", ""); !apperrors.IsValidation(err) {
		t.Fatalf("missing password: expected validation error, got %v", err)
	}

	if _, _, err := svc.Register("carol", "carol@example.com", "secret"); err != nil {
		t.Fatalf("register carol: %v", err)
	}
	if _, _, err := svc.Register("carol", "other@example.com", "secret"); !apperrors.IsValidation(err) {
		t.Fatalf("duplicate username: expected validation error, got %v", err)
	}
}

func TestLoginDoesNotRevealWhichHalfFailed(t *testing.T) {
	db := openTestDB(t, "svc_login")
	svc := NewUserService(db)

	if _, _, err := svc.Register("alice", "", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("alice", "secret"); err != nil {
		t.Fatalf("valid login: %v", err)
	}

	_, badPass := svc.Login("alice", "wrong")
	_, badUser := svc.Login("nobody", "secret")
	if !errors.Is(badPass, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected invalid credentials, got %v", badPass)
	}
	if !errors.Is(badUser, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected invalid credentials, got %v", badUser)
	}
}
