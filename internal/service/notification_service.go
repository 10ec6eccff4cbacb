package service

import (
	"strings"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// NotificationService 站内通知服务
// 通知只追加，除已读标记外不提供修改或删除。
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateNotificationInput 创建通知输入
type CreateNotificationInput struct {
	Type    string
	Title   string
	Message string
	RefID   string
}

// List 通知列表
func (s *NotificationService) List(filter repository.NotificationListFilter) ([]models.Notification, int64, error) {
	return s.repo.List(filter)
}

// UnreadCount 未读数量
func (s *NotificationService) UnreadCount() (int64, error) {
	return s.repo.CountUnread()
}

// Create 追加一条通知
func (s *NotificationService) Create(input CreateNotificationInput) (*models.Notification, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Type))
	switch kind {
	case constants.NotificationTypeOrder, constants.NotificationTypePayment, constants.NotificationTypeStock:
	default:
		kind = constants.NotificationTypeOrder
	}

	notification := &models.Notification{
		Type:    kind,
		Title:   strings.TrimSpace(input.Title),
		Message: strings.TrimSpace(input.Message),
		RefID:   strings.TrimSpace(input.RefID),
	}
	if notification.Title == "" {
		return nil, ErrNotificationInvalid
	}
	if err := s.repo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkAsRead 标记单条已读（幂等，重复标记不报错）
func (s *NotificationService) MarkAsRead(id uint) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotFound
	}
	if notification.Read {
		return nil
	}
	return s.repo.MarkRead(id)
}

// MarkAllAsReadResult 批量标记的结果
type MarkAllAsReadResult struct {
	Marked int `json:"marked"`
	Failed int `json:"failed"`
}

// MarkAllAsRead 逐条标记全部未读
// 尽力而为：单条失败记录日志并继续，不回滚已标记的部分。
func (s *NotificationService) MarkAllAsRead() (MarkAllAsReadResult, error) {
	ids, err := s.repo.ListUnreadIDs()
	if err != nil {
		return MarkAllAsReadResult{}, err
	}

	result := MarkAllAsReadResult{}
	for _, id := range ids {
		if err := s.repo.MarkRead(id); err != nil {
			logger.Warnw("notification_mark_read_failed", "id", id, "error", err)
			result.Failed++
			continue
		}
		result.Marked++
	}
	return result, nil
}
