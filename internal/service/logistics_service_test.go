package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupLogisticsServiceTest(t *testing.T) *LogisticsService {
	t.Helper()
	dsn := fmt.Sprintf("file:logistics_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.LogisticsRate{}); err != nil {
		t.Fatalf("migrate logistics rate failed: %v", err)
	}
	return NewLogisticsService(repository.NewLogisticsRepository(db))
}

func TestProvincesFixedSet(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	provinces := svc.Provinces()
	if len(provinces) != 38 {
		t.Fatalf("expected 38 provinces, got %d", len(provinces))
	}
}

func TestCreateRateUnknownProvince(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	if _, err := svc.Create(RateInput{ProvinceName: "Atlantis", Price: money(10000)}); !errors.Is(err, ErrProvinceUnknown) {
		t.Fatalf("expected ErrProvinceUnknown, got %v", err)
	}
}

func TestCreateRateCanonicalizesName(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	rate, err := svc.Create(RateInput{ProvinceName: "dki jakarta", Price: money(15000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rate.ProvinceName != "DKI Jakarta" {
		t.Fatalf("expected canonical name, got %q", rate.ProvinceName)
	}
	if rate.ProvinceID != "dki-jakarta" {
		t.Fatalf("expected slug id, got %q", rate.ProvinceID)
	}
}

func TestCreateRateDuplicateProvince(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	if _, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(20000)}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(RateInput{ProvinceName: "BALI", Price: money(30000)}); !errors.Is(err, ErrProvinceExists) {
		t.Fatalf("expected ErrProvinceExists for case-insensitive dup, got %v", err)
	}
}

func TestCreateRateNonPositivePrice(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	if _, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(-1)}); !errors.Is(err, ErrRateInvalid) {
		t.Fatalf("expected ErrRateInvalid for negative price, got %v", err)
	}
	if _, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(0)}); !errors.Is(err, ErrRateInvalid) {
		t.Fatalf("expected ErrRateInvalid for zero price, got %v", err)
	}
}

func TestUpdateRateSameProvince(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	rate, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(20000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := svc.Update(rate.ProvinceID, RateInput{ProvinceName: "bali", Price: money(25000)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ProvinceID != rate.ProvinceID {
		t.Fatalf("expected id unchanged, got %q", updated.ProvinceID)
	}
	if !updated.Price.Decimal.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("expected price 25000, got %s", updated.Price.String())
	}
}

func TestUpdateRateChangesProvinceKey(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	rate, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(20000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	moved, err := svc.Update(rate.ProvinceID, RateInput{ProvinceName: "Banten", Price: money(18000)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if moved.ProvinceID != "banten" {
		t.Fatalf("expected new slug banten, got %q", moved.ProvinceID)
	}

	// 旧省份记录应已删除
	if _, err := svc.Get(rate.ProvinceID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old rate gone, got %v", err)
	}
	if _, err := svc.Get("banten"); err != nil {
		t.Fatalf("expected new rate fetchable, got %v", err)
	}
}

func TestUpdateRateToConfiguredProvince(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	if _, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(20000)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	rate, err := svc.Create(RateInput{ProvinceName: "Banten", Price: money(18000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Update(rate.ProvinceID, RateInput{ProvinceName: "Bali", Price: money(18000)}); !errors.Is(err, ErrProvinceExists) {
		t.Fatalf("expected ErrProvinceExists, got %v", err)
	}
}

func TestRateForProvince(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	if _, err := svc.Create(RateInput{ProvinceName: "Jawa Barat", Price: money(12000)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rate, err := svc.RateForProvince("jawa barat")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rate == nil || !rate.Price.Decimal.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("expected configured rate, got %+v", rate)
	}

	// 合法省份但未配置费率时返回 nil 而非错误
	rate, err = svc.RateForProvince("Papua")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rate != nil {
		t.Fatalf("expected nil for unconfigured province, got %+v", rate)
	}

	if _, err := svc.RateForProvince("Narnia"); !errors.Is(err, ErrProvinceUnknown) {
		t.Fatalf("expected ErrProvinceUnknown, got %v", err)
	}
}

func TestDeleteRate(t *testing.T) {
	svc := setupLogisticsServiceTest(t)
	rate, err := svc.Create(RateInput{ProvinceName: "Bali", Price: money(20000)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(rate.ProvinceID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(rate.ProvinceID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
