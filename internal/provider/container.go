package provider

import (
	"time"

	"github.com/laga-admin/internal/cache"
	"github.com/laga-admin/internal/config"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/queue"
	"github.com/laga-admin/internal/repository"
	"github.com/laga-admin/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	ProductRepo      repository.ProductRepository
	VariantRepo      repository.ProductVariantRepository
	CategoryRepo     repository.CategoryRepository
	OrderRepo        repository.OrderRepository
	VoucherRepo      repository.VoucherRepository
	LogisticsRepo    repository.LogisticsRepository
	NotificationRepo repository.NotificationRepository
	SalesReportRepo  repository.SalesReportRepository
	TvRepo           repository.TvRepository
	FantasyRepo      repository.FantasyRepository
	RegistrationRepo repository.RegistrationRepository
	TeamRepo         repository.TeamRepository
	ShoeRepo         repository.ShoeRepository
	PaymentRepo      repository.PaymentRepository

	// Services
	AuthService         *service.AuthService
	UploadService       *service.UploadService
	ProductService      *service.ProductService
	CategoryService     *service.CategoryService
	OrderService        *service.OrderService
	VoucherService      *service.VoucherService
	LogisticsService    *service.LogisticsService
	NotificationService *service.NotificationService
	TvService           *service.TvService
	ReportService       *service.ReportService
	FantasyService      *service.FantasyService
	RegistrationService *service.RegistrationService
	TeamService         *service.TeamService
	ShoeService         *service.ShoeService
	PaymentService      *service.PaymentService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewProductVariantRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.VoucherRepo = repository.NewVoucherRepository(db)
	c.LogisticsRepo = repository.NewLogisticsRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
	c.SalesReportRepo = repository.NewSalesReportRepository(db)
	c.TvRepo = repository.NewTvRepository(db)
	c.FantasyRepo = repository.NewFantasyRepository(db)
	c.RegistrationRepo = repository.NewRegistrationRepository(db)
	c.TeamRepo = repository.NewTeamRepository(db)
	c.ShoeRepo = repository.NewShoeRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
}

func (c *Container) initServices() {
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)

	// 队列可用时通知走异步分发，否则同步落库
	var notifier service.Notifier
	if c.QueueClient.Enabled() {
		notifier = c.QueueClient
	} else {
		notifier = &directNotifier{notifications: c.NotificationService}
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(
		c.ProductRepo,
		c.VariantRepo,
		notifier,
		c.Config.Marketplace.LowStockThreshold,
	)
	c.VoucherService = service.NewVoucherService(c.VoucherRepo)
	c.LogisticsService = service.NewLogisticsService(c.LogisticsRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.ProductRepo,
		c.VariantRepo,
		c.SalesReportRepo,
		c.VoucherService,
		c.LogisticsService,
		notifier,
		time.Duration(c.Config.Marketplace.ReservationMinutes)*time.Minute,
	)
	c.TvService = service.NewTvService(c.TvRepo)
	c.ReportService = service.NewReportService(
		c.SalesReportRepo,
		c.OrderRepo,
		c.ProductRepo,
		c.RegistrationRepo,
		c.NotificationRepo,
		c.Config.Marketplace.LowStockThreshold,
	)
	c.FantasyService = service.NewFantasyService(c.FantasyRepo)
	c.RegistrationService = service.NewRegistrationService(c.RegistrationRepo, c.FantasyRepo, notifier)
	c.TeamService = service.NewTeamService(c.TeamRepo)
	c.ShoeService = service.NewShoeService(c.ShoeRepo)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo)
}

// directNotifier 队列未启用时的降级实现，同步写入通知表
type directNotifier struct {
	notifications *service.NotificationService
}

func (n *directNotifier) Notify(kind, title, message, refID string) {
	_, err := n.notifications.Create(service.CreateNotificationInput{
		Type:    kind,
		Title:   title,
		Message: message,
		RefID:   refID,
	})
	if err != nil {
		logger.Warnw("notification_direct_create_failed", "type", kind, "ref_id", refID, "error", err)
	}
}
