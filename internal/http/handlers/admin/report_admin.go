package admin

import (
	"strconv"
	"time"

	handlershared "github.com/laga-admin/internal/http/handlers/shared"
	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// Dashboard 后台首页统计
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.ReportService.Dashboard(time.Now())
	if err != nil {
		respondError(c, response.CodeInternal, "查询统计失败", err)
		return
	}
	response.Success(c, stats)
}

// ListSalesReports 销售流水列表
func (h *Handler) ListSalesReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.SalesReportFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if from, err := parseTimeNullable(c.Query("from")); err == nil {
		filter.CompletedFrom = from
	}
	if to, err := parseTimeNullable(c.Query("to")); err == nil {
		filter.CompletedTo = to
	}

	reports, total, err := h.ReportService.ListSales(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询销售流水失败", err)
		return
	}
	response.SuccessWithPage(c, reports, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}

// SalesSummary 区间销售汇总
func (h *Handler) SalesSummary(c *gin.Context) {
	from, err := parseTimeNullable(c.Query("from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "起始时间格式错误", err)
		return
	}
	to, err := parseTimeNullable(c.Query("to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "结束时间格式错误", err)
		return
	}

	summary, err := h.ReportService.SalesSummary(from, to)
	if err != nil {
		respondError(c, response.CodeInternal, "查询销售汇总失败", err)
		return
	}
	response.Success(c, summary)
}
