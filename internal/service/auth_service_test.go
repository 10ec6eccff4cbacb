package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/laga-admin/internal/config"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate admin failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-not-for-production"
	cfg.JWT.ExpireHours = 1
	return NewAuthService(cfg, repository.NewAdminRepository(db)), db
}

func createAdmin(t *testing.T, svc *AuthService, db *gorm.DB, username, password, role string) *models.Admin {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestLoginSuccess(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createAdmin(t, svc, db, "admin", "correct-password", "admin")

	admin, token, expiresAt, err := svc.Login("admin", "correct-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("expected last login recorded")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createAdmin(t, svc, db, "admin", "correct-password", "admin")

	if _, _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLoginRejectsNonAdminRole(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createAdmin(t, svc, db, "player", "correct-password", "user")

	if _, _, _, err := svc.Login("player", "correct-password"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin role, got %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createAdmin(t, svc, db, "admin", "old-password", "admin")

	_, token, _, err := svc.Login("admin", "old-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}

	if err := svc.ChangePassword(admin.ID, "wrong", "new-password-123"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := svc.ChangePassword(admin.ID, "old-password", "short"); err == nil {
		t.Fatalf("expected rejection of short password")
	}
	if err := svc.ChangePassword(admin.ID, "old-password", "new-password-123"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	// 旧 Token 的版本号随改密失效
	valid, err := svc.VerifyTokenVersion(context.Background(), claims)
	if err != nil {
		t.Fatalf("verify token version failed: %v", err)
	}
	if valid {
		t.Fatalf("expected old token invalid after password change")
	}

	if _, _, _, err := svc.Login("admin", "old-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, _, _, err := svc.Login("admin", "new-password-123"); err != nil {
		t.Fatalf("expected new password accepted, got %v", err)
	}
}

func TestParseJWTRejectsTampering(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createAdmin(t, svc, db, "admin", "correct-password", "admin")

	_, token, _, err := svc.Login("admin", "correct-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("expected tampered token rejected")
	}

	other := setupAuthServiceTestWithSecret(t, "another-secret-entirely")
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("expected token signed with other secret rejected")
	}
}

func setupAuthServiceTestWithSecret(t *testing.T, secret string) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.SecretKey = secret
	cfg.JWT.ExpireHours = 1
	return NewAuthService(cfg, nil)
}
