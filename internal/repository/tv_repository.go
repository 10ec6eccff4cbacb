package repository

import (
	"errors"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// TvRepository 电视栏目数据访问接口
type TvRepository interface {
	ListCategories() ([]models.TvCategory, error)
	GetCategoryByID(id uint) (*models.TvCategory, error)
	CreateCategory(category *models.TvCategory) error
	UpdateCategory(category *models.TvCategory) error
	DeleteCategoryCascade(id uint) error
	MaxSortOrder() (int, error)

	ListContents(categoryID uint) ([]models.TvContent, error)
	GetContentByID(id uint) (*models.TvContent, error)
	CreateContent(content *models.TvContent) error
	UpdateContent(content *models.TvContent) error
	DeleteContent(id uint) error
	CountContents(categoryID uint) (int64, error)
}

// GormTvRepository GORM 实现
type GormTvRepository struct {
	db *gorm.DB
}

// NewTvRepository 创建电视栏目仓库
func NewTvRepository(db *gorm.DB) *GormTvRepository {
	return &GormTvRepository{db: db}
}

// ListCategories 分类列表（按展示顺序）
func (r *GormTvRepository) ListCategories() ([]models.TvCategory, error) {
	var categories []models.TvCategory
	if err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID 根据 ID 获取分类
func (r *GormTvRepository) GetCategoryByID(id uint) (*models.TvCategory, error) {
	var category models.TvCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory 创建分类
func (r *GormTvRepository) CreateCategory(category *models.TvCategory) error {
	return r.db.Create(category).Error
}

// UpdateCategory 更新分类
func (r *GormTvRepository) UpdateCategory(category *models.TvCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategoryCascade 删除分类及其全部内容
// 在单个事务里先删内容后删分类，失败时整体回滚。
func (r *GormTvRepository) DeleteCategoryCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).
			Delete(&models.TvContent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TvCategory{}, id).Error
	})
}

// MaxSortOrder 当前最大展示顺序（无分类时返回 0）
func (r *GormTvRepository) MaxSortOrder() (int, error) {
	var max int64
	err := r.db.Model(&models.TvCategory{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return int(max), nil
}

// ListContents 某分类下的内容列表（按创建时间倒序）
func (r *GormTvRepository) ListContents(categoryID uint) ([]models.TvContent, error) {
	var contents []models.TvContent
	if err := r.db.Where("category_id = ?", categoryID).
		Order("created_at DESC, id DESC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// GetContentByID 根据 ID 获取内容
func (r *GormTvRepository) GetContentByID(id uint) (*models.TvContent, error) {
	var content models.TvContent
	if err := r.db.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// CreateContent 创建内容
func (r *GormTvRepository) CreateContent(content *models.TvContent) error {
	return r.db.Create(content).Error
}

// UpdateContent 更新内容
func (r *GormTvRepository) UpdateContent(content *models.TvContent) error {
	return r.db.Save(content).Error
}

// DeleteContent 删除内容
func (r *GormTvRepository) DeleteContent(id uint) error {
	return r.db.Delete(&models.TvContent{}, id).Error
}

// CountContents 某分类下内容数量
func (r *GormTvRepository) CountContents(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TvContent{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
