package service

import (
	"strings"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// TvService 电视栏目服务
type TvService struct {
	repo repository.TvRepository
}

// NewTvService 创建电视栏目服务
func NewTvService(repo repository.TvRepository) *TvService {
	return &TvService{repo: repo}
}

// TvCategoryInput 创建/更新分类输入
type TvCategoryInput struct {
	Name      string
	SortOrder *int
}

// TvContentInput 创建/更新内容输入
type TvContentInput struct {
	Title       string
	Description string
	VideoURL    string
	Thumbnail   string
}

// ListCategories 分类列表（按展示顺序）
func (s *TvService) ListCategories() ([]models.TvCategory, error) {
	return s.repo.ListCategories()
}

// GetCategory 分类详情
func (s *TvService) GetCategory(id uint) (*models.TvCategory, error) {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// NextOrder 下一个展示顺序（当前最大值 + 1，空集合返回 1）
func (s *TvService) NextOrder() (int, error) {
	max, err := s.repo.MaxSortOrder()
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// CreateCategory 创建分类
// 未指定顺序时排到末尾，显式顺序必须从 1 起。
func (s *TvService) CreateCategory(input TvCategoryInput) (*models.TvCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTvCategoryInvalid
	}

	sortOrder := 0
	if input.SortOrder != nil {
		if *input.SortOrder < 1 {
			return nil, ErrTvCategoryInvalid
		}
		sortOrder = *input.SortOrder
	} else {
		next, err := s.NextOrder()
		if err != nil {
			return nil, err
		}
		sortOrder = next
	}

	category := &models.TvCategory{
		Name:      name,
		SortOrder: sortOrder,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory 更新分类
func (s *TvService) UpdateCategory(id uint, input TvCategoryInput) (*models.TvCategory, error) {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTvCategoryInvalid
	}
	category.Name = name
	if input.SortOrder != nil {
		if *input.SortOrder < 1 {
			return nil, ErrTvCategoryInvalid
		}
		category.SortOrder = *input.SortOrder
	}
	if err := s.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类及其全部内容
// 单事务执行，任一步失败整体回滚，不留孤儿内容。
func (s *TvService) DeleteCategory(id uint) error {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.DeleteCategoryCascade(id)
}

// ListContents 某分类下的内容列表
func (s *TvService) ListContents(categoryID uint) ([]models.TvContent, error) {
	category, err := s.repo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListContents(categoryID)
}

// GetContent 内容详情
func (s *TvService) GetContent(id uint) (*models.TvContent, error) {
	content, err := s.repo.GetContentByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrNotFound
	}
	return content, nil
}

// CreateContent 在分类下创建内容
func (s *TvService) CreateContent(categoryID uint, input TvContentInput) (*models.TvContent, error) {
	category, err := s.repo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTvContentInvalid
	}

	content := &models.TvContent{
		CategoryID:  categoryID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Thumbnail:   strings.TrimSpace(input.Thumbnail),
	}
	if err := s.repo.CreateContent(content); err != nil {
		return nil, err
	}
	return content, nil
}

// UpdateContent 更新内容
func (s *TvService) UpdateContent(id uint, input TvContentInput) (*models.TvContent, error) {
	content, err := s.repo.GetContentByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTvContentInvalid
	}
	content.Title = title
	content.Description = strings.TrimSpace(input.Description)
	content.VideoURL = strings.TrimSpace(input.VideoURL)
	content.Thumbnail = strings.TrimSpace(input.Thumbnail)
	if err := s.repo.UpdateContent(content); err != nil {
		return nil, err
	}
	return content, nil
}

// DeleteContent 删除内容
func (s *TvService) DeleteContent(id uint) error {
	content, err := s.repo.GetContentByID(id)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrNotFound
	}
	return s.repo.DeleteContent(id)
}
