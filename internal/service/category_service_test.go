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

func setupCategoryServiceTest(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:category_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func TestCategoryLifecycle(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	if _, err := svc.Create("  "); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid for blank title, got %v", err)
	}

	category, err := svc.Create("  球衣 ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if category.Title != "球衣" {
		t.Fatalf("expected trimmed title, got %q", category.Title)
	}

	updated, err := svc.Update(category.ID, "球鞋")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "球鞋" {
		t.Fatalf("expected renamed, got %q", updated.Title)
	}

	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(category.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteCategoryKeepsProducts(t *testing.T) {
	svc, db := setupCategoryServiceTest(t)
	category, err := svc.Create("球衣")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := db.Create(&models.Product{Title: "主场球衣", CategoryID: category.ID}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 分类删除不级联商品，商品保留软引用
	var count int64
	if err := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected product retained, got %d", count)
	}
}
