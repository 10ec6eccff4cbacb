package admin

import (
	"errors"
	"strconv"
	"time"

	handlershared "github.com/laga-admin/internal/http/handlers/shared"
	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		UserID:        c.Query("user_id"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		OrderNo:       c.Query("order_no"),
	}
	if from, err := parseTimeNullable(c.Query("created_from")); err == nil {
		filter.CreatedFrom = from
	}
	if to, err := parseTimeNullable(c.Query("created_to")); err == nil {
		filter.CreatedTo = to
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询订单失败", err)
		return
	}
	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询订单失败", err)
		}
		return
	}
	response.Success(c, order)
}

// OrderItemRequest 下单商品项
type OrderItemRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// CreateOrderRequest 后台代客下单请求
type CreateOrderRequest struct {
	UserID      string             `json:"user_id" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required"`
	VoucherCode string             `json:"voucher_code"`
	PayMethod   string             `json:"pay_method"`
	Shipping    struct {
		ProvinceName string `json:"province_name"`
		FullAddress  string `json:"full_address"`
		PostalCode   string `json:"postal_code"`
	} `json:"shipping"`
}

// CreateOrder 后台代客下单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	input := service.CreateOrderInput{
		UserID:      req.UserID,
		VoucherCode: req.VoucherCode,
		PayMethod:   req.PayMethod,
		Shipping: models.ShippingAddress{
			ProvinceName: req.Shipping.ProvinceName,
			FullAddress:  req.Shipping.FullAddress,
			PostalCode:   req.Shipping.PostalCode,
		},
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderInvalid):
			respondError(c, response.CodeBadRequest, "订单参数无效", nil)
		case errors.Is(err, service.ErrOrderOutOfStock):
			respondError(c, response.CodeConflict, "商品库存不足", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品或优惠码不存在", nil)
		case errors.Is(err, service.ErrVoucherExpired), errors.Is(err, service.ErrVoucherInvalid):
			respondError(c, response.CodeBadRequest, "优惠码不可用", nil)
		case errors.Is(err, service.ErrProvinceUnknown):
			respondError(c, response.CodeBadRequest, "未知的省份名称", nil)
		default:
			respondError(c, response.CodeInternal, "创建订单失败", err)
		}
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 状态更新请求，发货时可顺带提交运单号
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status, req.TrackingNumber)
	if err != nil {
		var transitionErr *service.OrderStatusTransitionError
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		case errors.As(err, &transitionErr):
			respondError(c, response.CodeConflict, transitionErr.Error(), nil)
		case errors.Is(err, service.ErrOrderInvalid):
			respondError(c, response.CodeBadRequest, "未知的订单状态", nil)
		default:
			respondError(c, response.CodeInternal, "更新订单状态失败", err)
		}
		return
	}
	response.Success(c, order)
}

// UpdateTrackingRequest 运单号更新请求
type UpdateTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// UpdateOrderTracking 写入/覆盖运单号
func (h *Handler) UpdateOrderTracking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	order, err := h.OrderService.UpdateTracking(id, req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		case errors.Is(err, service.ErrOrderInvalid):
			respondError(c, response.CodeBadRequest, "运单号不能为空", nil)
		default:
			respondError(c, response.CodeInternal, "更新运单号失败", err)
		}
		return
	}
	response.Success(c, order)
}

// parseTimeNullable 解析可空时间参数（RFC3339 或日期）
func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
