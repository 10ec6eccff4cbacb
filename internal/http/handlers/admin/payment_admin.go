package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/laga-admin/internal/http/handlers/shared"
	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/repository"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPayments 支付记录列表（只读）
func (h *Handler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.PaymentListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   c.Query("user_id"),
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
	}
	if from, err := parseTimeNullable(c.Query("created_from")); err == nil {
		filter.CreatedFrom = from
	}
	if to, err := parseTimeNullable(c.Query("created_to")); err == nil {
		filter.CreatedTo = to
	}

	payments, total, err := h.PaymentService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询支付记录失败", err)
		return
	}
	response.SuccessWithPage(c, payments, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetPayment 支付记录详情
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payment, err := h.PaymentService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "支付记录不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询支付记录失败", err)
		}
		return
	}
	response.Success(c, payment)
}
