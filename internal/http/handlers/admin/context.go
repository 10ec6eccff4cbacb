package admin

import (
	"strconv"

	"github.com/laga-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("admin_id")
	if !exists {
		respondError(c, response.CodeUnauthorized, "未登录", nil)
		return 0, false
	}
	if id, ok := value.(uint); ok {
		return id, true
	}
	respondError(c, response.CodeInternal, "会话状态异常", nil)
	return 0, false
}

// parseIDParam 解析路径中的数字 ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "无效的 ID", err)
		return 0, false
	}
	return uint(id), true
}
