package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repository_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func TestOrderListFilters(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	orders := []models.Order{
		{OrderNo: "LAGA-1001", UserID: "u-1", Status: constants.OrderStatusPending,
			Payment: models.PaymentInfo{Status: constants.PaymentStatusPending}},
		{OrderNo: "LAGA-1002", UserID: "u-1", Status: constants.OrderStatusCompleted,
			Payment: models.PaymentInfo{Status: constants.PaymentStatusPaid}},
		{OrderNo: "LAGA-2001", UserID: "u-2", Status: constants.OrderStatusPending,
			Payment: models.PaymentInfo{Status: constants.PaymentStatusPaid}},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	got, total, err := repo.List(OrderListFilter{UserID: "u-1", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 orders for u-1, got total=%d len=%d", total, len(got))
	}

	got, total, err = repo.List(OrderListFilter{Status: constants.OrderStatusPending, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 pending orders, got %d", total)
	}

	// 订单号模糊匹配
	got, total, err = repo.List(OrderListFilter{OrderNo: "2001", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by order no failed: %v", err)
	}
	if total != 1 || got[0].OrderNo != "LAGA-2001" {
		t.Fatalf("expected LAGA-2001, got total=%d", total)
	}

	// 按支付状态过滤
	got, total, err = repo.List(OrderListFilter{PaymentStatus: constants.PaymentStatusPaid, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by payment status failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 paid orders, got %d", total)
	}

	// 支付状态可与订单状态叠加
	got, total, err = repo.List(OrderListFilter{
		Status:        constants.OrderStatusPending,
		PaymentStatus: constants.PaymentStatusPaid,
		Page:          1,
		PageSize:      10,
	})
	if err != nil {
		t.Fatalf("list by combined filters failed: %v", err)
	}
	if total != 1 || got[0].OrderNo != "LAGA-2001" {
		t.Fatalf("expected only LAGA-2001, got total=%d", total)
	}
}

func TestGetByOrderNo(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order := models.Order{
		OrderNo: "LAGA-3001",
		UserID:  "u-1",
		Status:  constants.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: 1, Title: "主场球衣 - M", Quantity: 2, PriceAmount: models.NewMoneyFromFloat(250000)},
		},
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByOrderNo("LAGA-3001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("expected order with items preloaded, got %+v", got)
	}

	missing, err := repo.GetByOrderNo("LAGA-9999")
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown order no")
	}
}

func TestListExpiredReservations(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	rows := []models.Order{
		{OrderNo: "LAGA-EXP-1", UserID: "u-1", Status: constants.OrderStatusPending, ReservedUntil: &past},
		{OrderNo: "LAGA-EXP-2", UserID: "u-1", Status: constants.OrderStatusPending, ReservedUntil: &future},
		{OrderNo: "LAGA-EXP-3", UserID: "u-1", Status: constants.OrderStatusProcessing, ReservedUntil: &past},
		{OrderNo: "LAGA-EXP-4", UserID: "u-1", Status: constants.OrderStatusPending},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	expired, err := repo.ListExpiredReservations(now, 10)
	if err != nil {
		t.Fatalf("list expired failed: %v", err)
	}
	if len(expired) != 1 || expired[0].OrderNo != "LAGA-EXP-1" {
		t.Fatalf("expected only LAGA-EXP-1 expired, got %d", len(expired))
	}
}

func TestUpdateColumnsEmptyIsNoop(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order := models.Order{OrderNo: "LAGA-4001", UserID: "u-1", Status: constants.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.UpdateColumns(order.ID, nil); err != nil {
		t.Fatalf("empty update should be a no-op, got %v", err)
	}
	if err := repo.UpdateColumns(order.ID, map[string]interface{}{"status": constants.OrderStatusProcessing}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var refreshed models.Order
	if err := db.First(&refreshed, order.ID).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if refreshed.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected processing, got %q", refreshed.Status)
	}
}
