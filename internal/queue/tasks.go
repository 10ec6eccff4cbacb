package queue

import (
	"encoding/json"

	"github.com/laga-admin/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskNotificationDispatch 站内通知分发任务
	TaskNotificationDispatch = constants.TaskNotificationDispatch
	// TaskOrderReservationExpire 订单预占过期巡检任务
	TaskOrderReservationExpire = constants.TaskOrderReservationExpire
)

// NotificationDispatchPayload 通知分发任务载荷
type NotificationDispatchPayload struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	RefID   string `json:"ref_id"`
}

// OrderReservationExpirePayload 预占过期巡检任务载荷
type OrderReservationExpirePayload struct {
	Limit int `json:"limit"`
}

// NewNotificationDispatchTask 创建通知分发任务
func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificationDispatch, body), nil
}

// NewOrderReservationExpireTask 创建预占过期巡检任务
func NewOrderReservationExpireTask(payload OrderReservationExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderReservationExpire, body), nil
}
