package repository

import (
	"errors"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// LogisticsRepository 物流费率数据访问接口
type LogisticsRepository interface {
	List() ([]models.LogisticsRate, error)
	GetByProvinceID(provinceID string) (*models.LogisticsRate, error)
	CountByProvinceName(name string, excludeProvinceID string) (int64, error)
	Create(rate *models.LogisticsRate) error
	Update(rate *models.LogisticsRate) error
	Delete(provinceID string) error
}

// GormLogisticsRepository GORM 实现
type GormLogisticsRepository struct {
	db *gorm.DB
}

// NewLogisticsRepository 创建物流费率仓库
func NewLogisticsRepository(db *gorm.DB) *GormLogisticsRepository {
	return &GormLogisticsRepository{db: db}
}

// List 全部费率（按省份名称排序）
func (r *GormLogisticsRepository) List() ([]models.LogisticsRate, error) {
	var rates []models.LogisticsRate
	if err := r.db.Order("province_name ASC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// GetByProvinceID 根据省份 slug 获取费率
func (r *GormLogisticsRepository) GetByProvinceID(provinceID string) (*models.LogisticsRate, error) {
	var rate models.LogisticsRate
	if err := r.db.Where("province_id = ?", provinceID).First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// CountByProvinceName 按省份名称统计（不区分大小写，编辑时排除自身）
func (r *GormLogisticsRepository) CountByProvinceName(name string, excludeProvinceID string) (int64, error) {
	var count int64
	query := r.db.Model(&models.LogisticsRate{}).
		Where("LOWER(province_name) = LOWER(?)", name)
	if excludeProvinceID != "" {
		query = query.Where("province_id != ?", excludeProvinceID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建费率
func (r *GormLogisticsRepository) Create(rate *models.LogisticsRate) error {
	return r.db.Create(rate).Error
}

// Update 更新费率
func (r *GormLogisticsRepository) Update(rate *models.LogisticsRate) error {
	return r.db.Save(rate).Error
}

// Delete 删除费率
func (r *GormLogisticsRepository) Delete(provinceID string) error {
	return r.db.Where("province_id = ?", provinceID).
		Delete(&models.LogisticsRate{}).Error
}
