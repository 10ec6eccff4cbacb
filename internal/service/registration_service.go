package service

import (
	"fmt"
	"strings"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// 报名支付状态取值（与支付记录共用大写编码）
var fantasyPaymentStatuses = map[string]struct{}{
	constants.FantasyPaymentPending: {},
	constants.FantasyPaymentPaid:    {},
	constants.FantasyPaymentFailed:  {},
	constants.FantasyPaymentExpired: {},
}

// RegistrationService 活动报名服务
type RegistrationService struct {
	repo        repository.RegistrationRepository
	fantasyRepo repository.FantasyRepository
	notifier    Notifier
}

// NewRegistrationService 创建报名服务
func NewRegistrationService(
	repo repository.RegistrationRepository,
	fantasyRepo repository.FantasyRepository,
	notifier Notifier,
) *RegistrationService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RegistrationService{
		repo:        repo,
		fantasyRepo: fantasyRepo,
		notifier:    notifier,
	}
}

// RegistrationInput 创建/更新报名输入
type RegistrationInput struct {
	FantasyID uint
	UserID    string
	Name      string
	Phone     string
	TeamID    *uint
	Amount    models.Money
}

// List 报名列表
func (s *RegistrationService) List(filter repository.RegistrationListFilter) ([]models.Registration, int64, error) {
	return s.repo.List(filter)
}

// Get 报名详情
func (s *RegistrationService) Get(id uint) (*models.Registration, error) {
	registration, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}
	return registration, nil
}

// Create 创建报名（后台补录）
// 名额已满的活动拒绝报名。
func (s *RegistrationService) Create(input RegistrationInput) (*models.Registration, error) {
	name := strings.TrimSpace(input.Name)
	if input.FantasyID == 0 || name == "" || input.Amount.IsNegative() {
		return nil, ErrRegistrationInvalid
	}

	fantasy, err := s.fantasyRepo.GetByID(input.FantasyID)
	if err != nil {
		return nil, err
	}
	if fantasy == nil {
		return nil, ErrNotFound
	}

	if fantasy.Quota > 0 {
		count, err := s.fantasyRepo.CountRegistrations(input.FantasyID)
		if err != nil {
			return nil, err
		}
		if count >= int64(fantasy.Quota) {
			return nil, ErrRegistrationInvalid
		}
	}

	registration := &models.Registration{
		FantasyID:     input.FantasyID,
		UserID:        strings.TrimSpace(input.UserID),
		Name:          name,
		Phone:         strings.TrimSpace(input.Phone),
		TeamID:        input.TeamID,
		PaymentStatus: constants.FantasyPaymentPending,
		Amount:        input.Amount,
	}
	if err := s.repo.Create(registration); err != nil {
		return nil, err
	}
	return registration, nil
}

// Update 更新报名资料（不触碰支付状态）
func (s *RegistrationService) Update(id uint, input RegistrationInput) (*models.Registration, error) {
	registration, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || input.Amount.IsNegative() {
		return nil, ErrRegistrationInvalid
	}

	registration.Name = name
	registration.Phone = strings.TrimSpace(input.Phone)
	registration.TeamID = input.TeamID
	registration.Amount = input.Amount

	if err := s.repo.Update(registration); err != nil {
		return nil, err
	}
	return registration, nil
}

// UpdatePaymentStatus 核对后更新支付状态
func (s *RegistrationService) UpdatePaymentStatus(id uint, rawStatus string) (*models.Registration, error) {
	registration, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}

	status := strings.ToUpper(strings.TrimSpace(rawStatus))
	if _, ok := fantasyPaymentStatuses[status]; !ok {
		return nil, ErrRegistrationInvalid
	}
	if status == registration.PaymentStatus {
		return registration, nil
	}

	if err := s.repo.UpdatePaymentStatus(id, status); err != nil {
		return nil, err
	}
	if status == constants.FantasyPaymentPaid {
		s.notifier.Notify(
			constants.NotificationTypePayment,
			"报名缴费到账",
			fmt.Sprintf("报名 #%d（%s）已确认缴费", registration.ID, registration.Name),
			fmt.Sprintf("%d", registration.ID),
		)
	}
	return s.repo.GetByID(id)
}

// Delete 删除报名
func (s *RegistrationService) Delete(id uint) error {
	registration, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if registration == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
