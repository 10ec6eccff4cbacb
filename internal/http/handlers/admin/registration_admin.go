package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/laga-admin/internal/http/handlers/shared"
	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegistrationRequest 创建/更新报名请求
type RegistrationRequest struct {
	FantasyID uint    `json:"fantasy_id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone"`
	TeamID    *uint   `json:"team_id"`
	Amount    float64 `json:"amount"`
}

func (req RegistrationRequest) toInput() service.RegistrationInput {
	return service.RegistrationInput{
		FantasyID: req.FantasyID,
		UserID:    req.UserID,
		Name:      req.Name,
		Phone:     req.Phone,
		TeamID:    req.TeamID,
		Amount:    models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Amount)),
	}
}

// ListRegistrations 报名列表
func (h *Handler) ListRegistrations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	fantasyID, _ := strconv.ParseUint(c.Query("fantasy_id"), 10, 64)

	registrations, total, err := h.RegistrationService.List(repository.RegistrationListFilter{
		Page:          page,
		PageSize:      pageSize,
		FantasyID:     uint(fantasyID),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询报名失败", err)
		return
	}
	response.SuccessWithPage(c, registrations, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetRegistration 报名详情
func (h *Handler) GetRegistration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	registration, err := h.RegistrationService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "报名不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询报名失败", err)
		}
		return
	}
	response.Success(c, registration)
}

// CreateRegistration 后台补录报名
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	registration, err := h.RegistrationService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "活动不存在", nil)
		case errors.Is(err, service.ErrRegistrationInvalid):
			respondError(c, response.CodeBadRequest, "报名参数无效或名额已满", nil)
		default:
			respondError(c, response.CodeInternal, "创建报名失败", err)
		}
		return
	}
	response.Success(c, registration)
}

// UpdateRegistration 更新报名资料
func (h *Handler) UpdateRegistration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	registration, err := h.RegistrationService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "报名不存在", nil)
		case errors.Is(err, service.ErrRegistrationInvalid):
			respondError(c, response.CodeBadRequest, "报名参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新报名失败", err)
		}
		return
	}
	response.Success(c, registration)
}

// UpdateRegistrationPaymentRequest 支付状态更新请求
type UpdateRegistrationPaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// UpdateRegistrationPayment 核对后更新报名支付状态
func (h *Handler) UpdateRegistrationPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateRegistrationPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	registration, err := h.RegistrationService.UpdatePaymentStatus(id, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "报名不存在", nil)
		case errors.Is(err, service.ErrRegistrationInvalid):
			respondError(c, response.CodeBadRequest, "未知的支付状态", nil)
		default:
			respondError(c, response.CodeInternal, "更新支付状态失败", err)
		}
		return
	}
	response.Success(c, registration)
}

// DeleteRegistration 删除报名
func (h *Handler) DeleteRegistration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.RegistrationService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "报名不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除报名失败", err)
		}
		return
	}
	response.Success(c, nil)
}
