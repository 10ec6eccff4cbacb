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

// FantasyRequest 创建/更新赛事活动请求
type FantasyRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Price       float64   `json:"price"`
	Quota       int       `json:"quota"`
	Image       string    `json:"image"`
	IsActive    *bool     `json:"is_active"`
}

func (req FantasyRequest) toInput() service.FantasyInput {
	return service.FantasyInput{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		City:        req.City,
		EventDate:   req.EventDate,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Quota:       req.Quota,
		Image:       req.Image,
		IsActive:    req.IsActive,
	}
}

// ListFantasies 赛事活动列表
func (h *Handler) ListFantasies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	fantasies, total, err := h.FantasyService.List(repository.FantasyListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		City:       c.Query("city"),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询活动失败", err)
		return
	}
	response.SuccessWithPage(c, fantasies, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetFantasy 活动详情，附带报名人数
func (h *Handler) GetFantasy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fantasy, registered, err := h.FantasyService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "活动不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询活动失败", err)
		}
		return
	}
	response.Success(c, gin.H{
		"fantasy":    fantasy,
		"registered": registered,
	})
}

// CreateFantasy 创建活动
func (h *Handler) CreateFantasy(c *gin.Context) {
	var req FantasyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	fantasy, err := h.FantasyService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFantasyInvalid):
			respondError(c, response.CodeBadRequest, "活动参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建活动失败", err)
		}
		return
	}
	response.Success(c, fantasy)
}

// UpdateFantasy 更新活动
func (h *Handler) UpdateFantasy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req FantasyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	fantasy, err := h.FantasyService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "活动不存在", nil)
		case errors.Is(err, service.ErrFantasyInvalid):
			respondError(c, response.CodeBadRequest, "活动参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新活动失败", err)
		}
		return
	}
	response.Success(c, fantasy)
}

// DeleteFantasy 删除活动
func (h *Handler) DeleteFantasy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.FantasyService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "活动不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除活动失败", err)
		}
		return
	}
	response.Success(c, nil)
}
