package admin

import (
	"errors"

	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// TvCategoryRequest 创建/更新电视分类请求
type TvCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order *int   `json:"order"`
}

// TvContentRequest 创建/更新电视内容请求
type TvContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Thumbnail   string `json:"thumbnail"`
}

// ListTvCategories 电视分类列表（按展示顺序）
func (h *Handler) ListTvCategories(c *gin.Context) {
	categories, err := h.TvService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "查询电视分类失败", err)
		return
	}
	response.Success(c, categories)
}

// NextTvCategoryOrder 下一个可用的展示顺序
func (h *Handler) NextTvCategoryOrder(c *gin.Context) {
	next, err := h.TvService.NextOrder()
	if err != nil {
		respondError(c, response.CodeInternal, "查询展示顺序失败", err)
		return
	}
	response.Success(c, gin.H{"order": next})
}

// GetTvCategory 电视分类详情
func (h *Handler) GetTvCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.TvService.GetCategory(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "电视分类不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询电视分类失败", err)
		}
		return
	}
	response.Success(c, category)
}

// CreateTvCategory 创建电视分类
func (h *Handler) CreateTvCategory(c *gin.Context) {
	var req TvCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	category, err := h.TvService.CreateCategory(service.TvCategoryInput{
		Name:      req.Name,
		SortOrder: req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTvCategoryInvalid):
			respondError(c, response.CodeBadRequest, "分类参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建电视分类失败", err)
		}
		return
	}
	response.Success(c, category)
}

// UpdateTvCategory 更新电视分类
func (h *Handler) UpdateTvCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TvCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	category, err := h.TvService.UpdateCategory(id, service.TvCategoryInput{
		Name:      req.Name,
		SortOrder: req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "电视分类不存在", nil)
		case errors.Is(err, service.ErrTvCategoryInvalid):
			respondError(c, response.CodeBadRequest, "分类参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新电视分类失败", err)
		}
		return
	}
	response.Success(c, category)
}

// DeleteTvCategory 删除电视分类及其全部内容
func (h *Handler) DeleteTvCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.TvService.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "电视分类不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除电视分类失败", err)
		}
		return
	}
	response.Success(c, nil)
}

// ListTvContents 分类下的内容列表
func (h *Handler) ListTvContents(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contents, err := h.TvService.ListContents(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "电视分类不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询内容失败", err)
		}
		return
	}
	response.Success(c, contents)
}

// CreateTvContent 在分类下创建内容
func (h *Handler) CreateTvContent(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TvContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	content, err := h.TvService.CreateContent(categoryID, service.TvContentInput{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "电视分类不存在", nil)
		case errors.Is(err, service.ErrTvContentInvalid):
			respondError(c, response.CodeBadRequest, "内容参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建内容失败", err)
		}
		return
	}
	response.Success(c, content)
}

// UpdateTvContent 更新内容
func (h *Handler) UpdateTvContent(c *gin.Context) {
	contentID, ok := parseIDParam(c, "content_id")
	if !ok {
		return
	}
	var req TvContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	// 封面被替换时清理旧文件
	existing, _ := h.TvService.GetContent(contentID)

	content, err := h.TvService.UpdateContent(contentID, service.TvContentInput{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "内容不存在", nil)
		case errors.Is(err, service.ErrTvContentInvalid):
			respondError(c, response.CodeBadRequest, "内容参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新内容失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads([]string{existing.Thumbnail}, []string{req.Thumbnail})
	}
	response.Success(c, content)
}

// DeleteTvContent 删除内容
func (h *Handler) DeleteTvContent(c *gin.Context) {
	contentID, ok := parseIDParam(c, "content_id")
	if !ok {
		return
	}
	existing, _ := h.TvService.GetContent(contentID)
	if err := h.TvService.DeleteContent(contentID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "内容不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除内容失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads([]string{existing.Thumbnail}, nil)
	}
	response.Success(c, nil)
}
