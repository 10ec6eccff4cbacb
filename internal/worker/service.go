package worker

import (
	"context"
	"errors"
	"time"

	"github.com/laga-admin/internal/config"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/queue"

	"github.com/hibiken/asynq"
)

const reservationSweepBatch = 100

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer

	sweepInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer, sweepInterval time.Duration) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &Service{
		name:          "worker",
		server:        server,
		mux:           mux,
		consumer:      consumer,
		sweepInterval: sweepInterval,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.OrderService != nil {
		go s.runReservationSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runReservationSweepLoop 周期巡检预占过期的待支付订单
func (s *Service) runReservationSweepLoop(ctx context.Context) {
	runOnce := func() {
		expired, err := s.consumer.OrderService.ExpireReservations(time.Now(), reservationSweepBatch)
		if err != nil {
			logger.Warnw("worker_reservation_sweep_failed", "error", err)
			return
		}
		if expired > 0 {
			logger.Infow("worker_reservation_sweep_expired", "count", expired)
		}
	}
	runOnce()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
