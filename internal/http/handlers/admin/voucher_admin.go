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
	"github.com/shopspring/decimal"
)

// VoucherRequest 创建/更新优惠券请求
type VoucherRequest struct {
	Code        string    `json:"code" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Value       float64   `json:"value"`
	MinPurchase float64   `json:"min_purchase"`
	MaxDiscount float64   `json:"max_discount"`
	ValidUntil  time.Time `json:"valid_until" binding:"required"`
	IsActive    *bool     `json:"is_active"`
}

func (req VoucherRequest) toInput() service.VoucherInput {
	return service.VoucherInput{
		Code:        req.Code,
		Type:        req.Type,
		Value:       models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Value)),
		MinPurchase: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.MinPurchase)),
		MaxDiscount: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.MaxDiscount)),
		ValidUntil:  req.ValidUntil,
		IsActive:    req.IsActive,
	}
}

// ListVouchers 优惠券列表
func (h *Handler) ListVouchers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	vouchers, total, err := h.VoucherService.List(repository.VoucherListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询优惠券失败", err)
		return
	}
	response.SuccessWithPage(c, vouchers, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetVoucher 优惠券详情
func (h *Handler) GetVoucher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	voucher, err := h.VoucherService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "优惠券不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询优惠券失败", err)
		}
		return
	}
	response.Success(c, voucher)
}

// CreateVoucher 创建优惠券
func (h *Handler) CreateVoucher(c *gin.Context) {
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	voucher, err := h.VoucherService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoucherExists):
			respondError(c, response.CodeConflict, "优惠码已存在", nil)
		case errors.Is(err, service.ErrVoucherInvalid):
			respondError(c, response.CodeBadRequest, "优惠券参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建优惠券失败", err)
		}
		return
	}
	response.Success(c, voucher)
}

// UpdateVoucher 更新优惠券
func (h *Handler) UpdateVoucher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	voucher, err := h.VoucherService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "优惠券不存在", nil)
		case errors.Is(err, service.ErrVoucherExists):
			respondError(c, response.CodeConflict, "优惠码已存在", nil)
		case errors.Is(err, service.ErrVoucherInvalid):
			respondError(c, response.CodeBadRequest, "优惠券参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新优惠券失败", err)
		}
		return
	}
	response.Success(c, voucher)
}

// ToggleVoucher 启用/停用优惠券
func (h *Handler) ToggleVoucher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	voucher, err := h.VoucherService.ToggleActive(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "优惠券不存在", nil)
		default:
			respondError(c, response.CodeInternal, "切换状态失败", err)
		}
		return
	}
	response.Success(c, voucher)
}

// DeleteVoucher 删除优惠券
func (h *Handler) DeleteVoucher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.VoucherService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "优惠券不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除优惠券失败", err)
		}
		return
	}
	response.Success(c, nil)
}

// CheckVoucher 校验优惠码在给定金额下是否可用
func (h *Handler) CheckVoucher(c *gin.Context) {
	code := c.Query("code")
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "0"), 64)
	if code == "" || err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	voucher, discount, err := h.VoucherService.Usable(code, models.NewMoneyFromDecimal(decimal.NewFromFloat(amount)), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "优惠码不存在", nil)
		case errors.Is(err, service.ErrVoucherExpired):
			respondError(c, response.CodeBadRequest, "优惠码已过期或未启用", nil)
		case errors.Is(err, service.ErrVoucherInvalid):
			respondError(c, response.CodeBadRequest, "未达到最低消费金额", nil)
		default:
			respondError(c, response.CodeInternal, "校验优惠码失败", err)
		}
		return
	}
	response.Success(c, gin.H{
		"voucher":  voucher,
		"discount": discount,
	})
}
