package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRegistrationServiceTest(t *testing.T) (*RegistrationService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:registration_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Fantasy{}, &models.Registration{}, &models.Team{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewRegistrationService(
		repository.NewRegistrationRepository(db),
		repository.NewFantasyRepository(db),
		NopNotifier{},
	)
	return svc, db
}

func createFantasy(t *testing.T, db *gorm.DB, quota int) *models.Fantasy {
	t.Helper()
	fantasy := &models.Fantasy{
		Title:     "五人制趣味赛",
		City:      "Jakarta",
		EventDate: time.Now().Add(7 * 24 * time.Hour),
		Price:     money(150000),
		Quota:     quota,
		IsActive:  true,
	}
	if err := db.Create(fantasy).Error; err != nil {
		t.Fatalf("create fantasy failed: %v", err)
	}
	return fantasy
}

func TestCreateRegistration(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 10)

	registration, err := svc.Create(RegistrationInput{
		FantasyID: fantasy.ID,
		Name:      "Budi Santoso",
		Phone:     "081234567890",
		Amount:    money(150000),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if registration.PaymentStatus != constants.FantasyPaymentPending {
		t.Fatalf("expected pending payment status, got %q", registration.PaymentStatus)
	}
}

func TestCreateRegistrationQuotaFull(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 1)

	if _, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Budi", Amount: money(150000)}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Andi", Amount: money(150000)}); !errors.Is(err, ErrRegistrationInvalid) {
		t.Fatalf("expected ErrRegistrationInvalid when quota full, got %v", err)
	}
}

func TestCreateRegistrationUnlimitedQuota(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 0)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(RegistrationInput{
			FantasyID: fantasy.ID,
			Name:      fmt.Sprintf("Pemain %d", i),
			Amount:    money(150000),
		}); err != nil {
			t.Fatalf("registration %d failed: %v", i, err)
		}
	}
}

func TestCreateRegistrationValidation(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 10)

	if _, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "  "}); !errors.Is(err, ErrRegistrationInvalid) {
		t.Fatalf("expected ErrRegistrationInvalid for blank name, got %v", err)
	}
	if _, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Budi", Amount: money(-1)}); !errors.Is(err, ErrRegistrationInvalid) {
		t.Fatalf("expected ErrRegistrationInvalid for negative amount, got %v", err)
	}
	if _, err := svc.Create(RegistrationInput{FantasyID: 999, Name: "Budi"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing fantasy, got %v", err)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 10)
	registration, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Budi", Amount: money(150000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 小写输入归一化为大写编码
	updated, err := svc.UpdatePaymentStatus(registration.ID, " paid ")
	if err != nil {
		t.Fatalf("update payment failed: %v", err)
	}
	if updated.PaymentStatus != constants.FantasyPaymentPaid {
		t.Fatalf("expected PAID, got %q", updated.PaymentStatus)
	}

	// 同状态重复提交为空操作
	if _, err := svc.UpdatePaymentStatus(registration.ID, "PAID"); err != nil {
		t.Fatalf("same-status update should be a no-op, got %v", err)
	}

	if _, err := svc.UpdatePaymentStatus(registration.ID, "refunded"); !errors.Is(err, ErrRegistrationInvalid) {
		t.Fatalf("expected ErrRegistrationInvalid for unknown status, got %v", err)
	}
}

func TestUpdateRegistrationKeepsPaymentStatus(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 10)
	registration, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Budi", Amount: money(150000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.UpdatePaymentStatus(registration.ID, "PAID"); err != nil {
		t.Fatalf("update payment failed: %v", err)
	}

	updated, err := svc.Update(registration.ID, RegistrationInput{
		FantasyID: fantasy.ID,
		Name:      "Budi Santoso",
		Amount:    money(150000),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Budi Santoso" {
		t.Fatalf("expected renamed, got %q", updated.Name)
	}
	if updated.PaymentStatus != constants.FantasyPaymentPaid {
		t.Fatalf("profile update must not touch payment status, got %q", updated.PaymentStatus)
	}
}

func TestDeleteRegistration(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t)
	fantasy := createFantasy(t, db, 10)
	registration, err := svc.Create(RegistrationInput{FantasyID: fantasy.ID, Name: "Budi", Amount: money(150000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(registration.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(registration.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
