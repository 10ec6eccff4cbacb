package repository

import (
	"errors"
	"strings"

	"github.com/laga-admin/internal/models"

	"gorm.io/gorm"
)

// TeamRepository 队伍数据访问接口
type TeamRepository interface {
	List(filter TeamListFilter) ([]models.Team, int64, error)
	GetByID(id uint) (*models.Team, error)
	Create(team *models.Team) error
	Update(team *models.Team) error
	Delete(id uint) error
}

// GormTeamRepository GORM 实现
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建队伍仓库
func NewTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// List 队伍列表
func (r *GormTeamRepository) List(filter TeamListFilter) ([]models.Team, int64, error) {
	var teams []models.Team

	query := r.db.Model(&models.Team{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR captain LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetByID 根据 ID 获取队伍
func (r *GormTeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// Create 创建队伍
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// Update 更新队伍
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete 删除队伍（软删除）
func (r *GormTeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, id).Error
}
