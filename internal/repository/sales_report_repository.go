package repository

import (
	"time"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// SalesReportRepository 销售流水数据访问接口
type SalesReportRepository interface {
	List(filter SalesReportFilter) ([]models.SalesReport, int64, error)
	Create(report *models.SalesReport) error
	ExistsForOrder(orderID uint) (bool, error)
	Summary(from, to *time.Time) (models.Money, int64, error)
	WithTx(tx *gorm.DB) SalesReportRepository
}

// GormSalesReportRepository GORM 实现
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewSalesReportRepository 创建销售流水仓库
func NewSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSalesReportRepository) WithTx(tx *gorm.DB) SalesReportRepository {
	if tx == nil {
		return r
	}
	return &GormSalesReportRepository{db: tx}
}

// List 销售流水列表
func (r *GormSalesReportRepository) List(filter SalesReportFilter) ([]models.SalesReport, int64, error) {
	var reports []models.SalesReport

	query := r.db.Model(&models.SalesReport{})
	if filter.CompletedFrom != nil {
		query = query.Where("completed_at >= ?", *filter.CompletedFrom)
	}
	if filter.CompletedTo != nil {
		query = query.Where("completed_at <= ?", *filter.CompletedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("completed_at DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// Create 追加一条流水
func (r *GormSalesReportRepository) Create(report *models.SalesReport) error {
	return r.db.Create(report).Error
}

// ExistsForOrder 某订单是否已有流水（完成动作的幂等保护）
func (r *GormSalesReportRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.SalesReport{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Summary 汇总区间内成交金额与订单数
func (r *GormSalesReportRepository) Summary(from, to *time.Time) (models.Money, int64, error) {
	query := r.db.Model(&models.SalesReport{})
	if from != nil {
		query = query.Where("completed_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("completed_at <= ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return models.Money{}, 0, err
	}

	var sum float64
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error; err != nil {
		return models.Money{}, 0, err
	}
	return models.NewMoneyFromFloat(sum), count, nil
}
