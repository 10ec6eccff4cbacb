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

// ShoeRequest 创建/更新球鞋请求
type ShoeRequest struct {
	Brand    string  `json:"brand" binding:"required"`
	Model    string  `json:"model" binding:"required"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Image    string  `json:"image"`
	IsActive *bool   `json:"is_active"`
}

func (req ShoeRequest) toInput() service.ShoeInput {
	return service.ShoeInput{
		Brand:    req.Brand,
		Model:    req.Model,
		Size:     req.Size,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Stock:    req.Stock,
		Image:    req.Image,
		IsActive: req.IsActive,
	}
}

// ListShoes 球鞋列表
func (h *Handler) ListShoes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	shoes, total, err := h.ShoeService.List(repository.ShoeListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		Size:       c.Query("size"),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询球鞋失败", err)
		return
	}
	response.SuccessWithPage(c, shoes, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetShoe 球鞋详情
func (h *Handler) GetShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	shoe, err := h.ShoeService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "球鞋不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询球鞋失败", err)
		}
		return
	}
	response.Success(c, shoe)
}

// CreateShoe 创建球鞋
func (h *Handler) CreateShoe(c *gin.Context) {
	var req ShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	shoe, err := h.ShoeService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShoeInvalid):
			respondError(c, response.CodeBadRequest, "球鞋参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建球鞋失败", err)
		}
		return
	}
	response.Success(c, shoe)
}

// UpdateShoe 更新球鞋
func (h *Handler) UpdateShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	// 图片被替换时清理旧文件
	existing, _ := h.ShoeService.Get(id)

	shoe, err := h.ShoeService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "球鞋不存在", nil)
		case errors.Is(err, service.ErrShoeInvalid):
			respondError(c, response.CodeBadRequest, "球鞋参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新球鞋失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads([]string{existing.Image}, []string{req.Image})
	}
	response.Success(c, shoe)
}

// DeleteShoe 删除球鞋
func (h *Handler) DeleteShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ShoeService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "球鞋不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除球鞋失败", err)
		}
		return
	}
	response.Success(c, nil)
}
