package service

import (
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// PaymentService 支付记录服务
// 支付执行由外部系统负责，后台只读账本并据此核对状态。
type PaymentService struct {
	repo repository.PaymentRepository
}

// NewPaymentService 创建支付记录服务
func NewPaymentService(repo repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// List 支付记录列表
func (s *PaymentService) List(filter repository.PaymentListFilter) ([]models.Payment, int64, error) {
	return s.repo.List(filter)
}

// Get 支付记录详情
func (s *PaymentService) Get(id uint) (*models.Payment, error) {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	return payment, nil
}
