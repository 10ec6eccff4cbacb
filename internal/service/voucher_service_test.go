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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupVoucherServiceTest(t *testing.T) *VoucherService {
	t.Helper()
	dsn := fmt.Sprintf("file:voucher_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Voucher{}); err != nil {
		t.Fatalf("migrate voucher failed: %v", err)
	}
	return NewVoucherService(repository.NewVoucherRepository(db))
}

func money(v float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
}

func validVoucherInput() VoucherInput {
	return VoucherInput{
		Code:       "SAVE10",
		Type:       constants.VoucherTypePercentage,
		Value:      money(10),
		ValidUntil: time.Now().Add(24 * time.Hour),
	}
}

func TestNormalizeVoucherCode(t *testing.T) {
	if got := NormalizeVoucherCode("  save10  "); got != "SAVE10" {
		t.Fatalf("expected SAVE10, got %q", got)
	}
}

func TestCreateVoucherNormalizesCode(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	input := validVoucherInput()
	input.Code = "  welcome10 "
	voucher, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}
	if voucher.Code != "WELCOME10" {
		t.Fatalf("expected normalized code, got %q", voucher.Code)
	}
	if !voucher.IsActive {
		t.Fatalf("expected active by default")
	}
}

func TestCreateVoucherValidation(t *testing.T) {
	svc := setupVoucherServiceTest(t)

	cases := []struct {
		name   string
		mutate func(*VoucherInput)
	}{
		{"code too short", func(in *VoucherInput) { in.Code = "AB" }},
		{"code bad charset", func(in *VoucherInput) { in.Code = "SAVE-10" }},
		{"unknown type", func(in *VoucherInput) { in.Type = "bogo" }},
		{"zero value", func(in *VoucherInput) { in.Value = money(0) }},
		{"negative value", func(in *VoucherInput) { in.Value = money(-5) }},
		{"percent over 100", func(in *VoucherInput) { in.Value = money(120) }},
		{"negative min purchase", func(in *VoucherInput) { in.MinPurchase = money(-1) }},
		{"past valid until", func(in *VoucherInput) { in.ValidUntil = time.Now().Add(-time.Hour) }},
	}
	for _, tc := range cases {
		input := validVoucherInput()
		tc.mutate(&input)
		if _, err := svc.Create(input); !errors.Is(err, ErrVoucherInvalid) {
			t.Fatalf("%s: expected ErrVoucherInvalid, got %v", tc.name, err)
		}
	}
}

func TestCreateVoucherDuplicateCode(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	if _, err := svc.Create(validVoucherInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	dup := validVoucherInput()
	dup.Code = " save10 " // 规范化后同码
	if _, err := svc.Create(dup); !errors.Is(err, ErrVoucherExists) {
		t.Fatalf("expected ErrVoucherExists, got %v", err)
	}
}

func TestUpdateVoucherKeepOwnCode(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	voucher, err := svc.Create(validVoucherInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 不改码编辑不算冲突
	input := validVoucherInput()
	input.Value = money(15)
	updated, err := svc.Update(voucher.ID, input)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Value.Decimal.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected value 15, got %s", updated.Value.String())
	}

	// 改成其他券的码要拒绝
	other := validVoucherInput()
	other.Code = "OTHER20"
	if _, err := svc.Create(other); err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	input.Code = "other20"
	if _, err := svc.Update(voucher.ID, input); !errors.Is(err, ErrVoucherExists) {
		t.Fatalf("expected ErrVoucherExists, got %v", err)
	}
}

func TestCalcDiscountPercentageWithCap(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	voucher := &models.Voucher{
		Type:        constants.VoucherTypePercentage,
		Value:       money(10),
		MaxDiscount: money(5000),
	}
	got := svc.CalcDiscount(voucher, money(100000))
	if !got.Decimal.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected capped discount 5000, got %s", got.String())
	}

	voucher.MaxDiscount = models.Money{}
	got = svc.CalcDiscount(voucher, money(100000))
	if !got.Decimal.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected 10%% discount 10000, got %s", got.String())
	}
}

func TestCalcDiscountFlatClampedToPurchase(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	voucher := &models.Voucher{
		Type:  constants.VoucherTypeFlat,
		Value: money(50000),
	}
	got := svc.CalcDiscount(voucher, money(30000))
	if !got.Decimal.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected discount clamped to 30000, got %s", got.String())
	}
}

func TestUsableChecks(t *testing.T) {
	svc := setupVoucherServiceTest(t)
	input := validVoucherInput()
	input.MinPurchase = money(50000)
	voucher, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := svc.Usable("NOPE", money(100000), time.Now()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown code, got %v", err)
	}
	if _, _, err := svc.Usable("SAVE10", money(10000), time.Now()); !errors.Is(err, ErrVoucherInvalid) {
		t.Fatalf("expected ErrVoucherInvalid below min purchase, got %v", err)
	}
	if _, _, err := svc.Usable("save10", money(100000), time.Now()); err != nil {
		t.Fatalf("expected usable with lowercase input, got %v", err)
	}

	if _, err := svc.ToggleActive(voucher.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, _, err := svc.Usable("SAVE10", money(100000), time.Now()); !errors.Is(err, ErrVoucherExpired) {
		t.Fatalf("expected ErrVoucherExpired when inactive, got %v", err)
	}
}
