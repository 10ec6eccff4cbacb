package repository

import (
	"errors"
	"strings"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// RegistrationRepository 活动报名数据访问接口
type RegistrationRepository interface {
	List(filter RegistrationListFilter) ([]models.Registration, int64, error)
	GetByID(id uint) (*models.Registration, error)
	Create(registration *models.Registration) error
	Update(registration *models.Registration) error
	UpdatePaymentStatus(id uint, status string) error
	Delete(id uint) error
	CountByPaymentStatus(status string) (int64, error)
}

// GormRegistrationRepository GORM 实现
type GormRegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository 创建报名仓库
func NewRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

// List 报名列表
func (r *GormRegistrationRepository) List(filter RegistrationListFilter) ([]models.Registration, int64, error) {
	var registrations []models.Registration

	query := r.db.Model(&models.Registration{}).
		Preload("Fantasy").
		Preload("Team")
	if filter.FantasyID != 0 {
		query = query.Where("fantasy_id = ?", filter.FantasyID)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&registrations).Error; err != nil {
		return nil, 0, err
	}

	return registrations, total, nil
}

// GetByID 根据 ID 获取报名记录
func (r *GormRegistrationRepository) GetByID(id uint) (*models.Registration, error) {
	var registration models.Registration
	if err := r.db.Preload("Fantasy").
		Preload("Team").
		First(&registration, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// Create 创建报名记录
func (r *GormRegistrationRepository) Create(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

// Update 更新报名记录
func (r *GormRegistrationRepository) Update(registration *models.Registration) error {
	return r.db.Save(registration).Error
}

// UpdatePaymentStatus 仅更新支付状态字段
func (r *GormRegistrationRepository) UpdatePaymentStatus(id uint, status string) error {
	return r.db.Model(&models.Registration{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

// Delete 删除报名记录（软删除）
func (r *GormRegistrationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Registration{}, id).Error
}

// CountByPaymentStatus 按支付状态统计报名数
func (r *GormRegistrationRepository) CountByPaymentStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Registration{})
	if status != "" {
		query = query.Where("payment_status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
