package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/provider"
	"github.com/laga-admin/internal/queue"
	"github.com/laga-admin/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskNotificationDispatch, c.handleNotificationDispatch)
	mux.HandleFunc(queue.TaskOrderReservationExpire, c.handleReservationExpire)
}

func (c *Consumer) handleNotificationDispatch(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.NotificationDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_notification_unmarshal_failed", "error", err)
		return err
	}
	if payload.Title == "" {
		logger.Debugw("worker_notification_skip_empty_title", "ref_id", payload.RefID)
		return nil
	}
	_, err := c.NotificationService.Create(service.CreateNotificationInput{
		Type:    payload.Type,
		Title:   payload.Title,
		Message: payload.Message,
		RefID:   payload.RefID,
	})
	if err != nil {
		logger.Warnw("worker_notification_create_failed", "type", payload.Type, "ref_id", payload.RefID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleReservationExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderReservationExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_reservation_expire_unmarshal_failed", "error", err)
		return err
	}
	limit := payload.Limit
	if limit <= 0 {
		limit = 100
	}
	expired, err := c.OrderService.ExpireReservations(time.Now(), limit)
	if err != nil {
		logger.Warnw("worker_reservation_expire_failed", "error", err)
		return err
	}
	if expired > 0 {
		logger.Infow("worker_reservation_expired", "count", expired)
	}
	return nil
}
