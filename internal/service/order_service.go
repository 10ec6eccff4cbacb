package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
// 定价不变式：FinalAmount = TotalAmount - DiscountAmount + Logistics.Price。
// 状态与运单号更新只触碰自己的列，金额列在创建后不再改写。
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	variantRepo repository.ProductVariantRepository
	reportRepo  repository.SalesReportRepository
	voucherSvc  *VoucherService
	logistics   *LogisticsService
	notifier    Notifier

	reservationTTL time.Duration
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.ProductVariantRepository,
	reportRepo repository.SalesReportRepository,
	voucherSvc *VoucherService,
	logistics *LogisticsService,
	notifier Notifier,
	reservationTTL time.Duration,
) *OrderService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		variantRepo:    variantRepo,
		reportRepo:     reportRepo,
		voucherSvc:     voucherSvc,
		logistics:      logistics,
		notifier:       notifier,
		reservationTTL: reservationTTL,
	}
}

// OrderItemInput 下单商品项输入
type OrderItemInput struct {
	ProductID uint
	VariantID *uint
	Quantity  int
}

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	UserID      string
	Items       []OrderItemInput
	VoucherCode string
	Shipping    models.ShippingAddress
	PayMethod   string
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// Get 订单详情
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Create 创建订单
// 在单个事务内扣减库存、计算金额并写入订单与订单项。
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" || len(input.Items) == 0 {
		return nil, ErrOrderInvalid
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrOrderInvalid
		}
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:  generateOrderNo(),
		UserID:   userID,
		Status:   constants.OrderStatusPending,
		Shipping: input.Shipping,
		Payment: models.PaymentInfo{
			Status: constants.PaymentStatusPending,
			Method: strings.TrimSpace(input.PayMethod),
		},
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		productTx := s.productRepo.WithTx(tx)
		variantTx := s.variantRepo.WithTx(tx)

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			product, err := productTx.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrNotFound
			}

			price := product.PriceAmount
			title := product.Title
			if item.VariantID != nil {
				variant, err := variantTx.GetByID(*item.VariantID)
				if err != nil {
					return err
				}
				if variant == nil || variant.ProductID != product.ID {
					return ErrOrderInvalid
				}
				if variant.Stock < item.Quantity {
					return ErrOrderOutOfStock
				}
				price = variant.PriceAmount
				title = fmt.Sprintf("%s - %s", product.Title, variant.Name)
				if err := variantTx.UpdateStock(variant.ID, variant.Stock-item.Quantity); err != nil {
					return err
				}
				sum, err := productTx.SumVariantStock(product.ID)
				if err != nil {
					return err
				}
				if err := productTx.UpdateStock(product.ID, sum); err != nil {
					return err
				}
			} else {
				if len(product.Variants) > 0 {
					return ErrOrderInvalid
				}
				if product.Stock < item.Quantity {
					return ErrOrderOutOfStock
				}
				if err := productTx.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
					return err
				}
			}

			total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:   item.ProductID,
				VariantID:   item.VariantID,
				Title:       title,
				Quantity:    item.Quantity,
				PriceAmount: price,
			})
		}

		order.TotalAmount = models.NewMoneyFromDecimal(total)

		// 优惠券折扣
		if code := strings.TrimSpace(input.VoucherCode); code != "" {
			voucher, discount, err := s.voucherSvc.Usable(code, order.TotalAmount, now)
			if err != nil {
				return err
			}
			order.VoucherID = &voucher.ID
			order.DiscountAmount = discount
		}

		// 按收货省份计运费，未配置费率按 0 计
		if order.Shipping.ProvinceName != "" {
			rate, err := s.logistics.RateForProvince(order.Shipping.ProvinceName)
			if err != nil {
				return err
			}
			if rate != nil {
				order.Logistics.ProvinceID = rate.ProvinceID
				order.Logistics.Price = rate.Price
			}
		}

		order.FinalAmount = models.NewMoneyFromDecimal(
			order.TotalAmount.Decimal.
				Sub(order.DiscountAmount.Decimal).
				Add(order.Logistics.Price.Decimal))

		reservedUntil := now.Add(s.reservationTTL)
		order.ReservedUntil = &reservedUntil
		order.Items = items

		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		if order.VoucherID != nil {
			if err := s.voucherSvc.repo.WithTx(tx).IncrementUsage(*order.VoucherID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(
		constants.NotificationTypeOrder,
		"新订单",
		fmt.Sprintf("订单 %s 已创建，应付 %s", order.OrderNo, order.FinalAmount.String()),
		order.OrderNo,
	)
	return s.orderRepo.GetByID(order.ID)
}

// UpdateStatus 更新订单状态，可顺带写入运单号
// 只允许状态机内的流转；更新集只包含状态、时间与运单号列，不含任何金额列。
func (s *OrderService) UpdateStatus(id uint, rawStatus, trackingNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	newStatus := NormalizeOrderStatus(rawStatus)
	if newStatus == "" {
		return nil, ErrOrderInvalid
	}
	if newStatus == order.Status {
		return order, nil
	}
	if !CanTransitionOrderStatus(order.Status, newStatus) {
		return nil, &OrderStatusTransitionError{From: order.Status, To: newStatus}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": now,
	}
	if tracking := strings.TrimSpace(trackingNumber); tracking != "" {
		updates["logistics_tracking_number"] = tracking
	}
	if newStatus == constants.OrderStatusProcessing {
		// 进入处理即视为预占转正，停表
		updates["reserved_until"] = nil
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderTx := s.orderRepo.WithTx(tx)
		if err := orderTx.UpdateColumns(order.ID, updates); err != nil {
			return err
		}
		switch newStatus {
		case constants.OrderStatusCancelled:
			return s.restockItems(tx, order)
		case constants.OrderStatusCompleted:
			return s.appendSalesReport(tx, order, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(
		constants.NotificationTypeOrder,
		"订单状态更新",
		fmt.Sprintf("订单 %s 状态变更为 %s", order.OrderNo, newStatus),
		order.OrderNo,
	)
	return s.orderRepo.GetByID(id)
}

// UpdateTracking 写入/覆盖运单号
// 仅更新运单号列，订单其余字段（含金额）保持不变。
func (s *OrderService) UpdateTracking(id uint, trackingNumber string) (*models.Order, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrOrderInvalid
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{
		"logistics_tracking_number": trackingNumber,
		"updated_at":                time.Now(),
	}
	if err := s.orderRepo.UpdateColumns(id, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// ExpireReservations 取消预占超时的待支付订单并回补库存
// 由后台定时任务调用，单次处理不超过 limit 条。
func (s *OrderService) ExpireReservations(now time.Time, limit int) (int, error) {
	orders, err := s.orderRepo.ListExpiredReservations(now, limit)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, order := range orders {
		order := order
		err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"status":         constants.OrderStatusCancelled,
				"reserved_until": nil,
				"updated_at":     now,
			}
			if err := s.orderRepo.WithTx(tx).UpdateColumns(order.ID, updates); err != nil {
				return err
			}
			return s.restockItems(tx, &order)
		})
		if err != nil {
			logger.Errorw("order_reservation_expire_failed", "order_no", order.OrderNo, "error", err)
			continue
		}
		expired++
		s.notifier.Notify(
			constants.NotificationTypeOrder,
			"订单超时取消",
			fmt.Sprintf("订单 %s 预占超时已自动取消", order.OrderNo),
			order.OrderNo,
		)
	}
	return expired, nil
}

// restockItems 取消时回补库存
func (s *OrderService) restockItems(tx *gorm.DB, order *models.Order) error {
	productTx := s.productRepo.WithTx(tx)
	variantTx := s.variantRepo.WithTx(tx)

	for _, item := range order.Items {
		if item.VariantID != nil {
			variant, err := variantTx.GetByID(*item.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				continue
			}
			if err := variantTx.UpdateStock(variant.ID, variant.Stock+item.Quantity); err != nil {
				return err
			}
			sum, err := productTx.SumVariantStock(item.ProductID)
			if err != nil {
				return err
			}
			if err := productTx.UpdateStock(item.ProductID, sum); err != nil {
				return err
			}
			continue
		}

		product, err := productTx.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}
		if err := productTx.UpdateStock(product.ID, product.Stock+item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// appendSalesReport 完成时追加销售流水（按订单幂等）
func (s *OrderService) appendSalesReport(tx *gorm.DB, order *models.Order, now time.Time) error {
	reportTx := s.reportRepo.WithTx(tx)
	exists, err := reportTx.ExistsForOrder(order.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}
	return reportTx.Create(&models.SalesReport{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		Amount:      order.FinalAmount,
		ItemCount:   itemCount,
		CompletedAt: now,
	})
}

// generateOrderNo 生成订单编号（时间戳 + 随机段）
func generateOrderNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("LG%s%s", time.Now().Format("20060102150405"), suffix)
}
