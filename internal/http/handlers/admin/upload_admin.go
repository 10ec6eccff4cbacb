package admin

import (
	"errors"
	"strings"

	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// Upload 上传文件（multipart 表单：file + scene）
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "缺少上传文件", err)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	path, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadInvalid):
			respondError(c, response.CodeBadRequest, "文件类型或大小不符合要求", nil)
		default:
			respondError(c, response.CodeInternal, "上传失败", err)
		}
		return
	}

	requestLog(c).Infow("file_uploaded", "scene", scene, "path", path)
	response.Success(c, gin.H{"path": path})
}

// removeStaleUploads 清理被替换或删除后不再引用的上传文件（尽力而为）
// 只处理本服务托管的 /uploads/ 路径，外链一律跳过。
func (h *Handler) removeStaleUploads(old, kept []string) {
	if h.UploadService == nil {
		return
	}
	retained := make(map[string]struct{}, len(kept))
	for _, path := range kept {
		retained[strings.TrimSpace(path)] = struct{}{}
	}
	for _, path := range old {
		path = strings.TrimSpace(path)
		if !strings.HasPrefix(path, "/uploads/") {
			continue
		}
		if _, ok := retained[path]; ok {
			continue
		}
		h.UploadService.Remove(path)
	}
}
