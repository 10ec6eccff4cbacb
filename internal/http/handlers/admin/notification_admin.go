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

// ListNotifications 通知列表
func (h *Handler) ListNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	notifications, total, err := h.NotificationService.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		Type:       c.Query("type"),
		UnreadOnly: c.Query("unread") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询通知失败", err)
		return
	}
	response.SuccessWithPage(c, notifications, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// UnreadNotificationCount 未读通知数量
func (h *Handler) UnreadNotificationCount(c *gin.Context) {
	count, err := h.NotificationService.UnreadCount()
	if err != nil {
		respondError(c, response.CodeInternal, "查询未读数量失败", err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}

// MarkNotificationRead 标记单条通知已读（重复标记不报错）
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.NotificationService.MarkAsRead(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "通知不存在", nil)
		default:
			respondError(c, response.CodeInternal, "标记已读失败", err)
		}
		return
	}
	response.Success(c, nil)
}

// MarkAllNotificationsRead 全部标记已读，返回成功与失败的条数
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	result, err := h.NotificationService.MarkAllAsRead()
	if err != nil {
		respondError(c, response.CodeInternal, "标记已读失败", err)
		return
	}
	if result.Failed > 0 {
		requestLog(c).Warnw("mark_all_read_partial", "marked", result.Marked, "failed", result.Failed)
	}
	response.Success(c, result)
}
