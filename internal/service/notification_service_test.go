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

func setupNotificationServiceTest(t *testing.T) *NotificationService {
	t.Helper()
	dsn := fmt.Sprintf("file:notification_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		t.Fatalf("migrate notification failed: %v", err)
	}
	return NewNotificationService(repository.NewNotificationRepository(db))
}

func TestCreateNotificationDefaultsType(t *testing.T) {
	svc := setupNotificationServiceTest(t)
	notification, err := svc.Create(CreateNotificationInput{Type: "bogus", Title: "库存不足"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if notification.Type != constants.NotificationTypeOrder {
		t.Fatalf("expected fallback to order type, got %q", notification.Type)
	}

	notification, err = svc.Create(CreateNotificationInput{Type: " STOCK ", Title: "库存不足"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if notification.Type != constants.NotificationTypeStock {
		t.Fatalf("expected stock type, got %q", notification.Type)
	}
}

func TestCreateNotificationBlankTitle(t *testing.T) {
	svc := setupNotificationServiceTest(t)
	if _, err := svc.Create(CreateNotificationInput{Title: "   "}); !errors.Is(err, ErrNotificationInvalid) {
		t.Fatalf("expected ErrNotificationInvalid, got %v", err)
	}
}

func TestMarkAsReadIdempotent(t *testing.T) {
	svc := setupNotificationServiceTest(t)
	notification, err := svc.Create(CreateNotificationInput{Title: "新订单"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.MarkAsRead(notification.ID); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if err := svc.MarkAsRead(notification.ID); err != nil {
		t.Fatalf("second mark should be a no-op, got %v", err)
	}
	if err := svc.MarkAsRead(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}

	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no unread, got %d", count)
	}
}

func TestMarkAllAsRead(t *testing.T) {
	svc := setupNotificationServiceTest(t)
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(CreateNotificationInput{Title: fmt.Sprintf("通知 %d", i)}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	result, err := svc.MarkAllAsRead()
	if err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	if result.Marked != 3 || result.Failed != 0 {
		t.Fatalf("expected 3 marked, got %+v", result)
	}

	// 全部已读后再次标记为空操作
	result, err = svc.MarkAllAsRead()
	if err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	if result.Marked != 0 {
		t.Fatalf("expected nothing left to mark, got %+v", result)
	}
}

func TestListNotificationsUnreadFilter(t *testing.T) {
	svc := setupNotificationServiceTest(t)
	first, err := svc.Create(CreateNotificationInput{Title: "A"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(CreateNotificationInput{Title: "B"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.MarkAsRead(first.ID); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	items, total, err := svc.List(repository.NotificationListFilter{UnreadOnly: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Title != "B" {
		t.Fatalf("expected only unread B, got total=%d items=%+v", total, items)
	}
}
