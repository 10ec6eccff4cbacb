package service

import (
	"strings"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// ShoeService 球鞋租借库存服务
type ShoeService struct {
	repo repository.ShoeRepository
}

// NewShoeService 创建球鞋服务
func NewShoeService(repo repository.ShoeRepository) *ShoeService {
	return &ShoeService{repo: repo}
}

// ShoeInput 创建/更新球鞋输入
type ShoeInput struct {
	Brand    string
	Model    string
	Size     string
	Price    models.Money
	Stock    int
	Image    string
	IsActive *bool
}

// List 球鞋列表
func (s *ShoeService) List(filter repository.ShoeListFilter) ([]models.Shoe, int64, error) {
	return s.repo.List(filter)
}

// Get 球鞋详情
func (s *ShoeService) Get(id uint) (*models.Shoe, error) {
	shoe, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shoe == nil {
		return nil, ErrNotFound
	}
	return shoe, nil
}

// Create 创建球鞋
func (s *ShoeService) Create(input ShoeInput) (*models.Shoe, error) {
	model := strings.TrimSpace(input.Model)
	if model == "" || input.Stock < 0 || input.Price.IsNegative() {
		return nil, ErrShoeInvalid
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	shoe := &models.Shoe{
		Brand:    strings.TrimSpace(input.Brand),
		Model:    model,
		Size:     strings.TrimSpace(input.Size),
		Price:    input.Price,
		Stock:    input.Stock,
		Image:    strings.TrimSpace(input.Image),
		IsActive: isActive,
	}
	if err := s.repo.Create(shoe); err != nil {
		return nil, err
	}
	return shoe, nil
}

// Update 更新球鞋
func (s *ShoeService) Update(id uint, input ShoeInput) (*models.Shoe, error) {
	shoe, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shoe == nil {
		return nil, ErrNotFound
	}

	model := strings.TrimSpace(input.Model)
	if model == "" || input.Stock < 0 || input.Price.IsNegative() {
		return nil, ErrShoeInvalid
	}

	shoe.Brand = strings.TrimSpace(input.Brand)
	shoe.Model = model
	shoe.Size = strings.TrimSpace(input.Size)
	shoe.Price = input.Price
	shoe.Stock = input.Stock
	shoe.Image = strings.TrimSpace(input.Image)
	if input.IsActive != nil {
		shoe.IsActive = *input.IsActive
	}

	if err := s.repo.Update(shoe); err != nil {
		return nil, err
	}
	return shoe, nil
}

// Delete 删除球鞋
func (s *ShoeService) Delete(id uint) error {
	shoe, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shoe == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
