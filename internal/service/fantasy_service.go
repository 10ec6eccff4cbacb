package service

import (
	"strings"
	"time"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// FantasyService 趣味赛活动服务
type FantasyService struct {
	repo repository.FantasyRepository
}

// NewFantasyService 创建活动服务
func NewFantasyService(repo repository.FantasyRepository) *FantasyService {
	return &FantasyService{repo: repo}
}

// FantasyInput 创建/更新活动输入
type FantasyInput struct {
	Title       string
	Description string
	Venue       string
	City        string
	EventDate   time.Time
	Price       models.Money
	Quota       int
	Image       string
	IsActive    *bool
}

// List 活动列表
func (s *FantasyService) List(filter repository.FantasyListFilter) ([]models.Fantasy, int64, error) {
	return s.repo.List(filter)
}

// Get 活动详情（附带报名数）
func (s *FantasyService) Get(id uint) (*models.Fantasy, int64, error) {
	fantasy, err := s.repo.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if fantasy == nil {
		return nil, 0, ErrNotFound
	}
	count, err := s.repo.CountRegistrations(id)
	if err != nil {
		return nil, 0, err
	}
	return fantasy, count, nil
}

// Create 创建活动
func (s *FantasyService) Create(input FantasyInput) (*models.Fantasy, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Quota < 0 || input.Price.IsNegative() {
		return nil, ErrFantasyInvalid
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	fantasy := &models.Fantasy{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Venue:       strings.TrimSpace(input.Venue),
		City:        strings.TrimSpace(input.City),
		EventDate:   input.EventDate,
		Price:       input.Price,
		Quota:       input.Quota,
		Image:       strings.TrimSpace(input.Image),
		IsActive:    isActive,
	}
	if err := s.repo.Create(fantasy); err != nil {
		return nil, err
	}
	return fantasy, nil
}

// Update 更新活动
func (s *FantasyService) Update(id uint, input FantasyInput) (*models.Fantasy, error) {
	fantasy, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fantasy == nil {
		return nil, ErrNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || input.Quota < 0 || input.Price.IsNegative() {
		return nil, ErrFantasyInvalid
	}

	fantasy.Title = title
	fantasy.Description = strings.TrimSpace(input.Description)
	fantasy.Venue = strings.TrimSpace(input.Venue)
	fantasy.City = strings.TrimSpace(input.City)
	fantasy.EventDate = input.EventDate
	fantasy.Price = input.Price
	fantasy.Quota = input.Quota
	fantasy.Image = strings.TrimSpace(input.Image)
	if input.IsActive != nil {
		fantasy.IsActive = *input.IsActive
	}

	if err := s.repo.Update(fantasy); err != nil {
		return nil, err
	}
	return fantasy, nil
}

// Delete 删除活动
func (s *FantasyService) Delete(id uint) error {
	fantasy, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if fantasy == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
