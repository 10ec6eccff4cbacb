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

// VariantRequest 商品规格请求
type VariantRequest struct {
	Name  string  `json:"name" binding:"required"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Images      []string         `json:"images"`
	Price       float64          `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  uint             `json:"category_id"`
	Variants    []VariantRequest `json:"variants"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		InStockOnly:  c.Query("in_stock") == "true",
		WithCategory: true,
		WithVariants: true,
	}
	filter.MinPrice = parseMoneyQuery(c.Query("min_price"))
	filter.MaxPrice = parseMoneyQuery(c.Query("max_price"))

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询商品失败", err)
		return
	}
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// parseMoneyQuery 解析价格查询参数，缺省或非法时忽略
func parseMoneyQuery(raw string) *models.Money {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	money := models.NewMoneyFromFloat(value)
	return &money
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询商品失败", err)
		}
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	input := service.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Stock:       stock,
		CategoryID:  req.CategoryID,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.VariantInput{
			Name:        v.Name,
			SKU:         v.SKU,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(v.Price)),
			Stock:       v.Stock,
		})
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductInvalid), errors.Is(err, service.ErrVariantInvalid):
			respondError(c, response.CodeBadRequest, "商品参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建商品失败", err)
		}
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	// 旧图引用需在更新前读取，成功后清理被替换的文件
	existing, _ := h.ProductService.Get(id)

	product, err := h.ProductService.Update(id, service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		case errors.Is(err, service.ErrProductInvalid):
			respondError(c, response.CodeBadRequest, "商品参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新商品失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads(existing.Images, req.Images)
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	existing, _ := h.ProductService.Get(id)
	if err := h.ProductService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除商品失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads(existing.Images, nil)
	}
	response.Success(c, nil)
}

// UpdateStockRequest 库存调整请求
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// UpdateProductStock 直接设置无规格商品库存
func (h *Handler) UpdateProductStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	product, err := h.ProductService.UpdateStock(id, req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		case errors.Is(err, service.ErrProductInvalid):
			respondError(c, response.CodeBadRequest, "库存参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "调整库存失败", err)
		}
		return
	}
	response.Success(c, product)
}

// AddProductVariant 新增商品规格
func (h *Handler) AddProductVariant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	product, err := h.ProductService.AddVariant(id, service.VariantInput{
		Name:        req.Name,
		SKU:         req.SKU,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Stock:       req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "商品不存在", nil)
		case errors.Is(err, service.ErrVariantInvalid):
			respondError(c, response.CodeBadRequest, "规格参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "新增规格失败", err)
		}
		return
	}
	response.Success(c, product)
}

// UpdateProductVariant 更新商品规格
func (h *Handler) UpdateProductVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c, "variant_id")
	if !ok {
		return
	}
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	product, err := h.ProductService.UpdateVariant(variantID, service.VariantInput{
		Name:        req.Name,
		SKU:         req.SKU,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Stock:       req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "规格不存在", nil)
		case errors.Is(err, service.ErrVariantInvalid):
			respondError(c, response.CodeBadRequest, "规格参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新规格失败", err)
		}
		return
	}
	response.Success(c, product)
}

// DeleteProductVariant 删除商品规格
func (h *Handler) DeleteProductVariant(c *gin.Context) {
	variantID, ok := parseIDParam(c, "variant_id")
	if !ok {
		return
	}
	product, err := h.ProductService.DeleteVariant(variantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "规格不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除规格失败", err)
		}
		return
	}
	response.Success(c, product)
}
