package service

import (
	"strings"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// LogisticsService 物流费率服务
// 费率按省份配置，省份集合固定为印尼 38 个省。
type LogisticsService struct {
	repo repository.LogisticsRepository
}

// NewLogisticsService 创建物流费率服务
func NewLogisticsService(repo repository.LogisticsRepository) *LogisticsService {
	return &LogisticsService{repo: repo}
}

// RateInput 创建/更新费率输入
type RateInput struct {
	ProvinceName string
	Price        models.Money
}

// Provinces 可配置的省份全集
func (s *LogisticsService) Provinces() []string {
	return constants.IndonesianProvinces
}

// List 费率列表
func (s *LogisticsService) List() ([]models.LogisticsRate, error) {
	return s.repo.List()
}

// Get 费率详情
func (s *LogisticsService) Get(provinceID string) (*models.LogisticsRate, error) {
	rate, err := s.repo.GetByProvinceID(provinceID)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, ErrNotFound
	}
	return rate, nil
}

// Create 创建费率
// 省份名称必须在固定集合内，且每个省份至多一条费率（不区分大小写）。
func (s *LogisticsService) Create(input RateInput) (*models.LogisticsRate, error) {
	name := strings.TrimSpace(input.ProvinceName)
	if name == "" {
		return nil, ErrRateInvalid
	}
	canonical, ok := canonicalProvinceName(name)
	if !ok {
		return nil, ErrProvinceUnknown
	}
	if !input.Price.IsPositive() {
		return nil, ErrRateInvalid
	}

	count, err := s.repo.CountByProvinceName(canonical, "")
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProvinceExists
	}

	rate := &models.LogisticsRate{
		ProvinceID:   constants.ProvinceSlug(canonical),
		ProvinceName: canonical,
		Price:        input.Price,
	}
	if err := s.repo.Create(rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// Update 更新费率
// 改到其他已配置省份时拒绝，改回自身省份不算冲突。
func (s *LogisticsService) Update(provinceID string, input RateInput) (*models.LogisticsRate, error) {
	rate, err := s.repo.GetByProvinceID(provinceID)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.ProvinceName)
	if name == "" {
		return nil, ErrRateInvalid
	}
	canonical, ok := canonicalProvinceName(name)
	if !ok {
		return nil, ErrProvinceUnknown
	}
	if !input.Price.IsPositive() {
		return nil, ErrRateInvalid
	}

	count, err := s.repo.CountByProvinceName(canonical, provinceID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProvinceExists
	}

	newID := constants.ProvinceSlug(canonical)
	if newID != rate.ProvinceID {
		// 省份变更导致主键变化，先建新记录再删旧记录
		next := &models.LogisticsRate{
			ProvinceID:   newID,
			ProvinceName: canonical,
			Price:        input.Price,
		}
		if err := s.repo.Create(next); err != nil {
			return nil, err
		}
		if err := s.repo.Delete(rate.ProvinceID); err != nil {
			return nil, err
		}
		return next, nil
	}

	rate.ProvinceName = canonical
	rate.Price = input.Price
	if err := s.repo.Update(rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// Delete 删除费率
func (s *LogisticsService) Delete(provinceID string) error {
	rate, err := s.repo.GetByProvinceID(provinceID)
	if err != nil {
		return err
	}
	if rate == nil {
		return ErrNotFound
	}
	return s.repo.Delete(provinceID)
}

// RateForProvince 下单计费用：按省份名称取运费，未配置返回 nil
func (s *LogisticsService) RateForProvince(provinceName string) (*models.LogisticsRate, error) {
	canonical, ok := canonicalProvinceName(provinceName)
	if !ok {
		return nil, ErrProvinceUnknown
	}
	return s.repo.GetByProvinceID(constants.ProvinceSlug(canonical))
}

// canonicalProvinceName 匹配固定省份集合（不区分大小写），返回规范写法
func canonicalProvinceName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, province := range constants.IndonesianProvinces {
		if strings.EqualFold(province, trimmed) {
			return province, true
		}
	}
	return "", false
}
