package models

import "time"

// SalesReport 销售流水表（订单完成时追加一条）
type SalesReport struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                // 主键
	OrderID     uint      `gorm:"uniqueIndex;not null" json:"order_id"`                // 订单ID
	OrderNo     string    `gorm:"index;not null" json:"order_no"`                      // 订单编号
	Amount      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 成交金额（订单应付金额）
	ItemCount   int       `gorm:"not null;default:0" json:"item_count"`                // 商品件数
	CompletedAt time.Time `gorm:"index;not null" json:"completed_at"`                  // 完成时间
	CreatedAt   time.Time `json:"created_at"`                                          // 创建时间
}

// TableName 指定表名
func (SalesReport) TableName() string {
	return "sales_reports"
}
