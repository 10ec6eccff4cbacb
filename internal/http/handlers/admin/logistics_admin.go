package admin

import (
	"errors"

	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateRequest 创建/更新物流费率请求
type RateRequest struct {
	ProvinceName string  `json:"province_name" binding:"required"`
	Price        float64 `json:"price"`
}

// ListProvinces 可配置省份全集
func (h *Handler) ListProvinces(c *gin.Context) {
	response.Success(c, h.LogisticsService.Provinces())
}

// ListLogisticsRates 费率列表
func (h *Handler) ListLogisticsRates(c *gin.Context) {
	rates, err := h.LogisticsService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "查询费率失败", err)
		return
	}
	response.Success(c, rates)
}

// GetLogisticsRate 费率详情
func (h *Handler) GetLogisticsRate(c *gin.Context) {
	provinceID := c.Param("province_id")
	rate, err := h.LogisticsService.Get(provinceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "该省份尚未配置费率", nil)
		default:
			respondError(c, response.CodeInternal, "查询费率失败", err)
		}
		return
	}
	response.Success(c, rate)
}

// CreateLogisticsRate 创建费率
func (h *Handler) CreateLogisticsRate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	rate, err := h.LogisticsService.Create(service.RateInput{
		ProvinceName: req.ProvinceName,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProvinceUnknown):
			respondError(c, response.CodeBadRequest, "未知的省份名称", nil)
		case errors.Is(err, service.ErrProvinceExists):
			respondError(c, response.CodeConflict, "该省份已配置费率", nil)
		case errors.Is(err, service.ErrRateInvalid):
			respondError(c, response.CodeBadRequest, "费率参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建费率失败", err)
		}
		return
	}
	response.Success(c, rate)
}

// UpdateLogisticsRate 更新费率
func (h *Handler) UpdateLogisticsRate(c *gin.Context) {
	provinceID := c.Param("province_id")
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	rate, err := h.LogisticsService.Update(provinceID, service.RateInput{
		ProvinceName: req.ProvinceName,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "该省份尚未配置费率", nil)
		case errors.Is(err, service.ErrProvinceUnknown):
			respondError(c, response.CodeBadRequest, "未知的省份名称", nil)
		case errors.Is(err, service.ErrProvinceExists):
			respondError(c, response.CodeConflict, "目标省份已配置费率", nil)
		case errors.Is(err, service.ErrRateInvalid):
			respondError(c, response.CodeBadRequest, "费率参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新费率失败", err)
		}
		return
	}
	response.Success(c, rate)
}

// DeleteLogisticsRate 删除费率
func (h *Handler) DeleteLogisticsRate(c *gin.Context) {
	provinceID := c.Param("province_id")
	if err := h.LogisticsService.Delete(provinceID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "该省份尚未配置费率", nil)
		default:
			respondError(c, response.CodeInternal, "删除费率失败", err)
		}
		return
	}
	response.Success(c, nil)
}
