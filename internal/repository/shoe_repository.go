package repository

import (
	"errors"
	"strings"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// ShoeRepository 球鞋库存数据访问接口
type ShoeRepository interface {
	List(filter ShoeListFilter) ([]models.Shoe, int64, error)
	GetByID(id uint) (*models.Shoe, error)
	Create(shoe *models.Shoe) error
	Update(shoe *models.Shoe) error
	Delete(id uint) error
}

// GormShoeRepository GORM 实现
type GormShoeRepository struct {
	db *gorm.DB
}

// NewShoeRepository 创建球鞋仓库
func NewShoeRepository(db *gorm.DB) *GormShoeRepository {
	return &GormShoeRepository{db: db}
}

// List 球鞋列表
func (r *GormShoeRepository) List(filter ShoeListFilter) ([]models.Shoe, int64, error) {
	var shoes []models.Shoe

	query := r.db.Model(&models.Shoe{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("brand LIKE ? OR model LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&shoes).Error; err != nil {
		return nil, 0, err
	}

	return shoes, total, nil
}

// GetByID 根据 ID 获取球鞋
func (r *GormShoeRepository) GetByID(id uint) (*models.Shoe, error) {
	var shoe models.Shoe
	if err := r.db.First(&shoe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shoe, nil
}

// Create 创建球鞋
func (r *GormShoeRepository) Create(shoe *models.Shoe) error {
	return r.db.Create(shoe).Error
}

// Update 更新球鞋
func (r *GormShoeRepository) Update(shoe *models.Shoe) error {
	return r.db.Save(shoe).Error
}

// Delete 删除球鞋（软删除）
func (r *GormShoeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Shoe{}, id).Error
}
