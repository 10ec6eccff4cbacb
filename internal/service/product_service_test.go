package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductVariant{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewProductVariantRepository(db),
		NopNotifier{},
		5,
	)
	return svc, db
}

func TestCreateProductAggregatesVariantStock(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(CreateProductInput{
		Title:       "主场球衣",
		PriceAmount: money(250000),
		Stock:       999, // 有规格时显式库存被忽略
		Variants: []VariantInput{
			{Name: "S", Stock: 10, PriceAmount: money(250000)},
			{Name: "M", Stock: 20, PriceAmount: money(250000)},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Stock != 30 {
		t.Fatalf("expected aggregate stock 30, got %d", product.Stock)
	}
	if len(product.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(product.Variants))
	}
}

func TestListProductsPriceRange(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	seeds := []struct {
		title string
		price float64
	}{
		{"运动水壶", 45000},
		{"训练背心", 95000},
		{"主场球衣", 250000},
	}
	for _, seed := range seeds {
		if _, err := svc.Create(CreateProductInput{Title: seed.title, PriceAmount: money(seed.price), Stock: 5}); err != nil {
			t.Fatalf("create %s failed: %v", seed.title, err)
		}
	}

	min, max := money(50000), money(100000)
	products, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("list by price range failed: %v", err)
	}
	if total != 1 || products[0].Title != "训练背心" {
		t.Fatalf("expected only 训练背心 in range, got total=%d", total)
	}

	floor := money(100000)
	products, total, err = svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, MinPrice: &floor})
	if err != nil {
		t.Fatalf("list by min price failed: %v", err)
	}
	if total != 1 || products[0].Title != "主场球衣" {
		t.Fatalf("expected only 主场球衣 above floor, got total=%d", total)
	}

	// 边界值命中（含等于）
	exact := money(95000)
	_, total, err = svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, MinPrice: &exact, MaxPrice: &exact})
	if err != nil {
		t.Fatalf("list by exact price failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected boundary match, got total=%d", total)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	if _, err := svc.Create(CreateProductInput{Title: "  "}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid for blank title, got %v", err)
	}
	if _, err := svc.Create(CreateProductInput{Title: "壶", Stock: -1}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid for negative stock, got %v", err)
	}
	if _, err := svc.Create(CreateProductInput{
		Title:    "壶",
		Variants: []VariantInput{{Name: "", Stock: 1}},
	}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected ErrVariantInvalid for blank variant name, got %v", err)
	}
}

func TestUpdateStockRejectedForVariantProduct(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(CreateProductInput{
		Title:    "主场球衣",
		Variants: []VariantInput{{Name: "M", Stock: 5}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.UpdateStock(product.ID, 100); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid, got %v", err)
	}
}

func TestUpdateStockSimpleProduct(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(CreateProductInput{Title: "运动水壶", Stock: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := svc.UpdateStock(product.ID, 25)
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if updated.Stock != 25 {
		t.Fatalf("expected stock 25, got %d", updated.Stock)
	}
	if _, err := svc.UpdateStock(product.ID, -1); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid for negative stock, got %v", err)
	}
}

func TestVariantMutationsSyncAggregateStock(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(CreateProductInput{
		Title:    "主场球衣",
		Variants: []VariantInput{{Name: "S", Stock: 10}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	product, err = svc.AddVariant(product.ID, VariantInput{Name: "M", Stock: 15})
	if err != nil {
		t.Fatalf("add variant failed: %v", err)
	}
	if product.Stock != 25 {
		t.Fatalf("expected aggregate 25 after add, got %d", product.Stock)
	}

	var target *models.ProductVariant
	for i := range product.Variants {
		if product.Variants[i].Name == "M" {
			target = &product.Variants[i]
		}
	}
	if target == nil {
		t.Fatalf("variant M not found")
	}

	product, err = svc.UpdateVariant(target.ID, VariantInput{Name: "M", Stock: 5})
	if err != nil {
		t.Fatalf("update variant failed: %v", err)
	}
	if product.Stock != 15 {
		t.Fatalf("expected aggregate 15 after update, got %d", product.Stock)
	}

	product, err = svc.DeleteVariant(target.ID)
	if err != nil {
		t.Fatalf("delete variant failed: %v", err)
	}
	if product.Stock != 10 {
		t.Fatalf("expected aggregate 10 after delete, got %d", product.Stock)
	}
}
