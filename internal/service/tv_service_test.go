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

func setupTvServiceTest(t *testing.T) (*TvService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:tv_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.TvCategory{}, &models.TvContent{}); err != nil {
		t.Fatalf("migrate tv models failed: %v", err)
	}
	return NewTvService(repository.NewTvRepository(db)), db
}

func TestNextOrderStartsAtOne(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	next, err := svc.NextOrder()
	if err != nil {
		t.Fatalf("next order failed: %v", err)
	}
	if next != 1 {
		t.Fatalf("expected 1 on empty set, got %d", next)
	}
}

func TestCreateCategoryAppendsToEnd(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	explicit := 5
	if _, err := svc.CreateCategory(TvCategoryInput{Name: "集锦", SortOrder: &explicit}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 未指定顺序时取 max+1
	category, err := svc.CreateCategory(TvCategoryInput{Name: "采访"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if category.SortOrder != 6 {
		t.Fatalf("expected sort order 6, got %d", category.SortOrder)
	}

	next, err := svc.NextOrder()
	if err != nil {
		t.Fatalf("next order failed: %v", err)
	}
	if next != 7 {
		t.Fatalf("expected next order 7, got %d", next)
	}
}

func TestCreateCategoryBlankName(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	if _, err := svc.CreateCategory(TvCategoryInput{Name: "  "}); !errors.Is(err, ErrTvCategoryInvalid) {
		t.Fatalf("expected ErrTvCategoryInvalid, got %v", err)
	}
}

func TestCategorySortOrderMustBePositive(t *testing.T) {
	svc, _ := setupTvServiceTest(t)

	zero, negative := 0, -7
	if _, err := svc.CreateCategory(TvCategoryInput{Name: "集锦", SortOrder: &zero}); !errors.Is(err, ErrTvCategoryInvalid) {
		t.Fatalf("expected ErrTvCategoryInvalid for order 0, got %v", err)
	}
	if _, err := svc.CreateCategory(TvCategoryInput{Name: "集锦", SortOrder: &negative}); !errors.Is(err, ErrTvCategoryInvalid) {
		t.Fatalf("expected ErrTvCategoryInvalid for negative order, got %v", err)
	}

	category, err := svc.CreateCategory(TvCategoryInput{Name: "集锦"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.UpdateCategory(category.ID, TvCategoryInput{Name: "集锦", SortOrder: &zero}); !errors.Is(err, ErrTvCategoryInvalid) {
		t.Fatalf("expected ErrTvCategoryInvalid on update with order 0, got %v", err)
	}
}

func TestUpdateCategoryKeepsOrderWhenUnset(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	order := 3
	category, err := svc.CreateCategory(TvCategoryInput{Name: "集锦", SortOrder: &order})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateCategory(category.ID, TvCategoryInput{Name: "精彩集锦"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "精彩集锦" || updated.SortOrder != 3 {
		t.Fatalf("expected renamed with order kept, got %+v", updated)
	}
}

func TestDeleteCategoryCascadesContents(t *testing.T) {
	svc, db := setupTvServiceTest(t)
	category, err := svc.CreateCategory(TvCategoryInput{Name: "集锦"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.CreateContent(category.ID, TvContentInput{
			Title:    fmt.Sprintf("比赛回放 %d", i),
			VideoURL: "https://cdn.example.com/v.mp4",
		}); err != nil {
			t.Fatalf("create content failed: %v", err)
		}
	}

	if err := svc.DeleteCategory(category.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var contents int64
	if err := db.Model(&models.TvContent{}).Where("category_id = ?", category.ID).Count(&contents).Error; err != nil {
		t.Fatalf("count contents failed: %v", err)
	}
	if contents != 0 {
		t.Fatalf("expected no orphan contents, got %d", contents)
	}
}

func TestDeleteCategoryRollsBackOnFailure(t *testing.T) {
	svc, db := setupTvServiceTest(t)
	category, err := svc.CreateCategory(TvCategoryInput{Name: "集锦"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.CreateContent(category.ID, TvContentInput{
			Title:    fmt.Sprintf("比赛回放 %d", i),
			VideoURL: "https://cdn.example.com/v.mp4",
		}); err != nil {
			t.Fatalf("create content failed: %v", err)
		}
	}

	// 用触发器阻断分类行删除，模拟事务中途失败
	if err := db.Exec(`CREATE TRIGGER tv_categories_delete_guard BEFORE DELETE ON tv_categories
BEGIN SELECT RAISE(ABORT, 'delete blocked'); END`).Error; err != nil {
		t.Fatalf("create trigger failed: %v", err)
	}

	if err := svc.DeleteCategory(category.ID); err == nil {
		t.Fatalf("expected cascade delete to fail")
	}

	// 整体回滚：分类仍在，内容一条不少
	if _, err := svc.GetCategory(category.ID); err != nil {
		t.Fatalf("expected category intact after rollback, got %v", err)
	}
	var contents int64
	if err := db.Model(&models.TvContent{}).Where("category_id = ?", category.ID).Count(&contents).Error; err != nil {
		t.Fatalf("count contents failed: %v", err)
	}
	if contents != 2 {
		t.Fatalf("expected contents restored by rollback, got %d", contents)
	}
}

func TestContentUnderMissingCategory(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	if _, err := svc.CreateContent(999, TvContentInput{Title: "回放"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListContents(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentLifecycle(t *testing.T) {
	svc, _ := setupTvServiceTest(t)
	category, err := svc.CreateCategory(TvCategoryInput{Name: "集锦"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	if _, err := svc.CreateContent(category.ID, TvContentInput{Title: " "}); !errors.Is(err, ErrTvContentInvalid) {
		t.Fatalf("expected ErrTvContentInvalid for blank title, got %v", err)
	}

	content, err := svc.CreateContent(category.ID, TvContentInput{Title: "决赛回放", VideoURL: "https://cdn.example.com/final.mp4"})
	if err != nil {
		t.Fatalf("create content failed: %v", err)
	}

	updated, err := svc.UpdateContent(content.ID, TvContentInput{Title: "总决赛回放", VideoURL: content.VideoURL})
	if err != nil {
		t.Fatalf("update content failed: %v", err)
	}
	if updated.Title != "总决赛回放" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}

	if err := svc.DeleteContent(content.ID); err != nil {
		t.Fatalf("delete content failed: %v", err)
	}
	if _, err := svc.GetContent(content.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
