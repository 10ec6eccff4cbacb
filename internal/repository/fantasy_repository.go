package repository

import (
	"errors"
	"strings"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// FantasyRepository 趣味赛活动数据访问接口
type FantasyRepository interface {
	List(filter FantasyListFilter) ([]models.Fantasy, int64, error)
	GetByID(id uint) (*models.Fantasy, error)
	Create(fantasy *models.Fantasy) error
	Update(fantasy *models.Fantasy) error
	Delete(id uint) error
	CountRegistrations(fantasyID uint) (int64, error)
}

// GormFantasyRepository GORM 实现
type GormFantasyRepository struct {
	db *gorm.DB
}

// NewFantasyRepository 创建活动仓库
func NewFantasyRepository(db *gorm.DB) *GormFantasyRepository {
	return &GormFantasyRepository{db: db}
}

// List 活动列表
func (r *GormFantasyRepository) List(filter FantasyListFilter) ([]models.Fantasy, int64, error) {
	var fantasies []models.Fantasy

	query := r.db.Model(&models.Fantasy{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR venue LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("event_date DESC, id DESC").Find(&fantasies).Error; err != nil {
		return nil, 0, err
	}

	return fantasies, total, nil
}

// GetByID 根据 ID 获取活动
func (r *GormFantasyRepository) GetByID(id uint) (*models.Fantasy, error) {
	var fantasy models.Fantasy
	if err := r.db.First(&fantasy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fantasy, nil
}

// Create 创建活动
func (r *GormFantasyRepository) Create(fantasy *models.Fantasy) error {
	return r.db.Create(fantasy).Error
}

// Update 更新活动
func (r *GormFantasyRepository) Update(fantasy *models.Fantasy) error {
	return r.db.Save(fantasy).Error
}

// Delete 删除活动（软删除）
func (r *GormFantasyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Fantasy{}, id).Error
}

// CountRegistrations 统计某活动的报名数量
func (r *GormFantasyRepository) CountRegistrations(fantasyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Where("fantasy_id = ?", fantasyID).
		Count(&count).Error
	return count, err
}
