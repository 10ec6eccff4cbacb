package service

import (
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// ReportService 报表与看板服务
type ReportService struct {
	reportRepo       repository.SalesReportRepository
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	registrationRepo repository.RegistrationRepository
	notificationRepo repository.NotificationRepository

	lowStockThreshold int
}

// NewReportService 创建报表服务
func NewReportService(
	reportRepo repository.SalesReportRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	registrationRepo repository.RegistrationRepository,
	notificationRepo repository.NotificationRepository,
	lowStockThreshold int,
) *ReportService {
	return &ReportService{
		reportRepo:        reportRepo,
		orderRepo:         orderRepo,
		productRepo:       productRepo,
		registrationRepo:  registrationRepo,
		notificationRepo:  notificationRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// SalesSummary 销售汇总
type SalesSummary struct {
	TotalAmount models.Money `json:"total_amount"`
	OrderCount  int64        `json:"order_count"`
}

// DashboardStats 看板统计
type DashboardStats struct {
	PendingOrders       int64        `json:"pending_orders"`
	ProcessingOrders    int64        `json:"processing_orders"`
	CompletedOrders     int64        `json:"completed_orders"`
	Revenue30d          models.Money `json:"revenue_30d"`
	LowStockProducts    int64        `json:"low_stock_products"`
	PaidRegistrations   int64        `json:"paid_registrations"`
	UnreadNotifications int64        `json:"unread_notifications"`
}

// ListSales 销售流水列表
func (s *ReportService) ListSales(filter repository.SalesReportFilter) ([]models.SalesReport, int64, error) {
	return s.reportRepo.List(filter)
}

// SalesSummary 汇总区间内的成交金额与订单数
func (s *ReportService) SalesSummary(from, to *time.Time) (SalesSummary, error) {
	amount, count, err := s.reportRepo.Summary(from, to)
	if err != nil {
		return SalesSummary{}, err
	}
	return SalesSummary{TotalAmount: amount, OrderCount: count}, nil
}

// Dashboard 后台首页统计
// 各项指标独立查询，任一项失败整体返回错误。
func (s *ReportService) Dashboard(now time.Time) (DashboardStats, error) {
	stats := DashboardStats{}

	var err error
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(constants.OrderStatusPending); err != nil {
		return stats, err
	}
	if stats.ProcessingOrders, err = s.orderRepo.CountByStatus(constants.OrderStatusProcessing); err != nil {
		return stats, err
	}
	if stats.CompletedOrders, err = s.orderRepo.CountByStatus(constants.OrderStatusCompleted); err != nil {
		return stats, err
	}
	if stats.Revenue30d, err = s.orderRepo.SumFinalAmountSince(constants.OrderStatusCompleted, now.AddDate(0, 0, -30)); err != nil {
		return stats, err
	}
	if stats.LowStockProducts, err = s.productRepo.CountLowStock(s.lowStockThreshold); err != nil {
		return stats, err
	}
	if stats.PaidRegistrations, err = s.registrationRepo.CountByPaymentStatus(constants.FantasyPaymentPaid); err != nil {
		return stats, err
	}
	if stats.UnreadNotifications, err = s.notificationRepo.CountUnread(); err != nil {
		return stats, err
	}
	return stats, nil
}
