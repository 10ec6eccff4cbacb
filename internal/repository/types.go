package repository

import (
	"time"

	"github.com/laga-admin/internal/models"
)

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	MinPrice     *models.Money
	MaxPrice     *models.Money
	InStockOnly  bool
	WithCategory bool
	WithVariants bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        string
	Status        string
	PaymentStatus string
	OrderNo       string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// VoucherListFilter 查询优惠券列表的过滤条件
type VoucherListFilter struct {
	Page       int
	PageSize   int
	Search     string
	ActiveOnly bool
}

// NotificationListFilter 查询通知列表的过滤条件
type NotificationListFilter struct {
	Page       int
	PageSize   int
	Type       string
	UnreadOnly bool
}

// FantasyListFilter 查询活动列表的过滤条件
type FantasyListFilter struct {
	Page       int
	PageSize   int
	Search     string
	City       string
	ActiveOnly bool
}

// RegistrationListFilter 查询报名列表的过滤条件
type RegistrationListFilter struct {
	Page          int
	PageSize      int
	FantasyID     uint
	PaymentStatus string
	Search        string
}

// TeamListFilter 查询队伍列表的过滤条件
type TeamListFilter struct {
	Page     int
	PageSize int
	Search   string
	City     string
}

// ShoeListFilter 查询球鞋列表的过滤条件
type ShoeListFilter struct {
	Page       int
	PageSize   int
	Search     string
	Size       string
	ActiveOnly bool
}

// PaymentListFilter 查询支付记录列表的过滤条件
type PaymentListFilter struct {
	Page        int
	PageSize    int
	UserID      string
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// SalesReportFilter 查询销售流水的过滤条件
type SalesReportFilter struct {
	Page          int
	PageSize      int
	CompletedFrom *time.Time
	CompletedTo   *time.Time
}
