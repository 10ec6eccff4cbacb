package service

import (
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

func setupReportServiceTest(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:report_service_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{}, &models.OrderItem{},
		&models.Product{}, &models.ProductVariant{},
		&models.Fantasy{}, &models.Registration{},
		&models.Notification{}, &models.SalesReport{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewReportService(
		repository.NewSalesReportRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewRegistrationRepository(db),
		repository.NewNotificationRepository(db),
		5,
	)
	return svc, db
}

func createOrderRow(t *testing.T, db *gorm.DB, status string, finalAmount models.Money, createdAt time.Time) {
	t.Helper()
	order := &models.Order{
		OrderNo:     fmt.Sprintf("ORD-%d-%d", time.Now().UnixNano(), createdAt.Unix()),
		UserID:      "u-1",
		Status:      status,
		TotalAmount: finalAmount,
		FinalAmount: finalAmount,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := db.Model(order).UpdateColumn("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate order failed: %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	now := time.Now()

	createOrderRow(t, db, constants.OrderStatusPending, money(100000), now)
	createOrderRow(t, db, constants.OrderStatusProcessing, money(200000), now)
	createOrderRow(t, db, constants.OrderStatusCompleted, money(300000), now.AddDate(0, 0, -10))
	// 超过 30 天的完成单不计入营收
	createOrderRow(t, db, constants.OrderStatusCompleted, money(999000), now.AddDate(0, 0, -40))

	// 低于阈值 5 的商品
	if err := db.Create(&models.Product{Title: "运动水壶", Stock: 2}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&models.Product{Title: "训练背心", Stock: 50}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := db.Create(&models.Registration{
		FantasyID:     1,
		UserID:        "u-1",
		Name:          "Budi",
		PaymentStatus: constants.FantasyPaymentPaid,
	}).Error; err != nil {
		t.Fatalf("create registration failed: %v", err)
	}
	if err := db.Create(&models.Notification{Type: constants.NotificationTypeOrder, Title: "新订单"}).Error; err != nil {
		t.Fatalf("create notification failed: %v", err)
	}

	stats, err := svc.Dashboard(now)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if stats.PendingOrders != 1 || stats.ProcessingOrders != 1 || stats.CompletedOrders != 2 {
		t.Fatalf("unexpected order counts: %+v", stats)
	}
	if !stats.Revenue30d.Decimal.Equal(decimal.NewFromInt(300000)) {
		t.Fatalf("expected 30d revenue 300000, got %s", stats.Revenue30d.String())
	}
	if stats.LowStockProducts != 1 {
		t.Fatalf("expected 1 low stock product, got %d", stats.LowStockProducts)
	}
	if stats.PaidRegistrations != 1 {
		t.Fatalf("expected 1 paid registration, got %d", stats.PaidRegistrations)
	}
	if stats.UnreadNotifications != 1 {
		t.Fatalf("expected 1 unread notification, got %d", stats.UnreadNotifications)
	}
}

func TestSalesSummaryWindow(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	now := time.Now()

	reports := []models.SalesReport{
		{OrderID: 1, OrderNo: "ORD-1", Amount: money(100000), ItemCount: 2, CompletedAt: now.AddDate(0, 0, -1)},
		{OrderID: 2, OrderNo: "ORD-2", Amount: money(250000), ItemCount: 1, CompletedAt: now.AddDate(0, 0, -5)},
		{OrderID: 3, OrderNo: "ORD-3", Amount: money(50000), ItemCount: 1, CompletedAt: now.AddDate(0, 0, -60)},
	}
	for i := range reports {
		if err := db.Create(&reports[i]).Error; err != nil {
			t.Fatalf("create report failed: %v", err)
		}
	}

	// 不限区间时全量汇总
	summary, err := svc.SalesSummary(nil, nil)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.OrderCount != 3 || !summary.TotalAmount.Decimal.Equal(decimal.NewFromInt(400000)) {
		t.Fatalf("unexpected full summary: %+v", summary)
	}

	from := now.AddDate(0, 0, -7)
	summary, err = svc.SalesSummary(&from, nil)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.OrderCount != 2 || !summary.TotalAmount.Decimal.Equal(decimal.NewFromInt(350000)) {
		t.Fatalf("unexpected windowed summary: %+v", summary)
	}
}

func TestListSalesOrderedByCompletion(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	now := time.Now()

	if err := db.Create(&models.SalesReport{OrderID: 1, OrderNo: "ORD-OLD", Amount: money(100), ItemCount: 1, CompletedAt: now.Add(-2 * time.Hour)}).Error; err != nil {
		t.Fatalf("create report failed: %v", err)
	}
	if err := db.Create(&models.SalesReport{OrderID: 2, OrderNo: "ORD-NEW", Amount: money(200), ItemCount: 1, CompletedAt: now.Add(-time.Hour)}).Error; err != nil {
		t.Fatalf("create report failed: %v", err)
	}

	items, total, err := svc.ListSales(repository.SalesReportFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 reports, got total=%d len=%d", total, len(items))
	}
	if items[0].OrderNo != "ORD-NEW" {
		t.Fatalf("expected newest first, got %q", items[0].OrderNo)
	}
}
