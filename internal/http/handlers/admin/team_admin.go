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
)

// TeamRequest 创建/更新队伍请求
type TeamRequest struct {
	Name    string          `json:"name" binding:"required"`
	Captain string          `json:"captain"`
	Phone   string          `json:"phone"`
	City    string          `json:"city"`
	Logo    string          `json:"logo"`
	TShirts []models.TShirt `json:"tshirts"`
}

func (req TeamRequest) toInput() service.TeamInput {
	return service.TeamInput{
		Name:    req.Name,
		Captain: req.Captain,
		Phone:   req.Phone,
		City:    req.City,
		Logo:    req.Logo,
		TShirts: models.TShirtList(req.TShirts),
	}
}

// ListTeams 队伍列表
func (h *Handler) ListTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	teams, total, err := h.TeamService.List(repository.TeamListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		City:     c.Query("city"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询队伍失败", err)
		return
	}
	response.SuccessWithPage(c, teams, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// GetTeam 队伍详情
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	team, err := h.TeamService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "队伍不存在", nil)
		default:
			respondError(c, response.CodeInternal, "查询队伍失败", err)
		}
		return
	}
	response.Success(c, team)
}

// CreateTeam 创建队伍
func (h *Handler) CreateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	team, err := h.TeamService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamInvalid):
			respondError(c, response.CodeBadRequest, "队伍参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建队伍失败", err)
		}
		return
	}
	response.Success(c, team)
}

// UpdateTeam 更新队伍
func (h *Handler) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	// 队徽被替换时清理旧文件
	existing, _ := h.TeamService.Get(id)

	team, err := h.TeamService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "队伍不存在", nil)
		case errors.Is(err, service.ErrTeamInvalid):
			respondError(c, response.CodeBadRequest, "队伍参数无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新队伍失败", err)
		}
		return
	}
	if existing != nil {
		h.removeStaleUploads([]string{existing.Logo}, []string{req.Logo})
	}
	response.Success(c, team)
}

// DeleteTeam 删除队伍
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.TeamService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "队伍不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除队伍失败", err)
		}
		return
	}
	response.Success(c, nil)
}
