package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/shopspring/decimal"
)

var voucherCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// VoucherService 优惠券服务
type VoucherService struct {
	repo repository.VoucherRepository
}

// NewVoucherService 创建优惠券服务
func NewVoucherService(repo repository.VoucherRepository) *VoucherService {
	return &VoucherService{repo: repo}
}

// VoucherInput 创建/更新优惠券输入
type VoucherInput struct {
	Code        string
	Type        string
	Value       models.Money
	MinPurchase models.Money
	MaxDiscount models.Money
	ValidUntil  time.Time
	IsActive    *bool
}

// NormalizeVoucherCode 规范化优惠码（去空格并转大写）
func NormalizeVoucherCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// validate 校验优惠券输入，返回规范化后的优惠码与类型
func (s *VoucherService) validate(input VoucherInput, now time.Time) (string, string, error) {
	code := NormalizeVoucherCode(input.Code)
	if len(code) < 3 {
		return "", "", ErrVoucherInvalid
	}
	if !voucherCodePattern.MatchString(code) {
		return "", "", ErrVoucherInvalid
	}

	voucherType := strings.ToLower(strings.TrimSpace(input.Type))
	if voucherType != constants.VoucherTypePercentage && voucherType != constants.VoucherTypeFlat {
		return "", "", ErrVoucherInvalid
	}

	if input.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		return "", "", ErrVoucherInvalid
	}
	if voucherType == constants.VoucherTypePercentage && input.Value.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return "", "", ErrVoucherInvalid
	}
	if input.MinPurchase.IsNegative() {
		return "", "", ErrVoucherInvalid
	}
	if input.MaxDiscount.IsNegative() {
		return "", "", ErrVoucherInvalid
	}
	if !input.ValidUntil.After(now) {
		return "", "", ErrVoucherInvalid
	}

	return code, voucherType, nil
}

// List 优惠券列表
func (s *VoucherService) List(filter repository.VoucherListFilter) ([]models.Voucher, int64, error) {
	return s.repo.List(filter)
}

// Get 优惠券详情
func (s *VoucherService) Get(id uint) (*models.Voucher, error) {
	voucher, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrNotFound
	}
	return voucher, nil
}

// Create 创建优惠券
func (s *VoucherService) Create(input VoucherInput) (*models.Voucher, error) {
	code, voucherType, err := s.validate(input, time.Now())
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByCode(code, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrVoucherExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	voucher := &models.Voucher{
		Code:        code,
		Type:        voucherType,
		Value:       input.Value,
		MinPurchase: input.MinPurchase,
		MaxDiscount: input.MaxDiscount,
		ValidUntil:  input.ValidUntil,
		IsActive:    isActive,
	}
	if err := s.repo.Create(voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// Update 更新优惠券
// 同码去重时排除自身，编辑不改码不算冲突。
func (s *VoucherService) Update(id uint, input VoucherInput) (*models.Voucher, error) {
	voucher, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrNotFound
	}

	code, voucherType, err := s.validate(input, time.Now())
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByCode(code, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrVoucherExists
	}

	voucher.Code = code
	voucher.Type = voucherType
	voucher.Value = input.Value
	voucher.MinPurchase = input.MinPurchase
	voucher.MaxDiscount = input.MaxDiscount
	voucher.ValidUntil = input.ValidUntil
	if input.IsActive != nil {
		voucher.IsActive = *input.IsActive
	}

	if err := s.repo.Update(voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// ToggleActive 启用/停用优惠券
func (s *VoucherService) ToggleActive(id uint) (*models.Voucher, error) {
	voucher, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, ErrNotFound
	}
	voucher.IsActive = !voucher.IsActive
	if err := s.repo.Update(voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// Delete 删除优惠券
func (s *VoucherService) Delete(id uint) error {
	voucher, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// Usable 校验优惠码当前是否可用，并计算折扣金额
func (s *VoucherService) Usable(code string, purchaseAmount models.Money, now time.Time) (*models.Voucher, models.Money, error) {
	normalized := NormalizeVoucherCode(code)
	if normalized == "" {
		return nil, models.Money{}, ErrVoucherInvalid
	}
	voucher, err := s.repo.GetByCode(normalized)
	if err != nil {
		return nil, models.Money{}, err
	}
	if voucher == nil {
		return nil, models.Money{}, ErrNotFound
	}
	if !voucher.IsActive || !voucher.ValidUntil.After(now) {
		return nil, models.Money{}, ErrVoucherExpired
	}
	if purchaseAmount.Decimal.LessThan(voucher.MinPurchase.Decimal) {
		return nil, models.Money{}, ErrVoucherInvalid
	}

	discount := s.CalcDiscount(voucher, purchaseAmount)
	return voucher, discount, nil
}

// CalcDiscount 计算折扣金额
// 百分比券按小计比例折算并受封顶约束，固定券不超过小计。
func (s *VoucherService) CalcDiscount(voucher *models.Voucher, purchaseAmount models.Money) models.Money {
	if voucher == nil {
		return models.Money{}
	}
	var discount decimal.Decimal
	switch voucher.Type {
	case constants.VoucherTypePercentage:
		discount = purchaseAmount.Decimal.
			Mul(voucher.Value.Decimal).
			Div(decimal.NewFromInt(100))
		if voucher.MaxDiscount.Decimal.GreaterThan(decimal.Zero) &&
			discount.GreaterThan(voucher.MaxDiscount.Decimal) {
			discount = voucher.MaxDiscount.Decimal
		}
	case constants.VoucherTypeFlat:
		discount = voucher.Value.Decimal
	}
	if discount.GreaterThan(purchaseAmount.Decimal) {
		discount = purchaseAmount.Decimal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discount)
}
