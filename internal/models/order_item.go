package models

import "time"

// OrderItem 订单项表（标题与单价为下单时快照）
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	OrderID     uint      `gorm:"not null;index" json:"order_id"`                            // 订单ID
	ProductID   uint      `gorm:"not null;index" json:"product_id"`                          // 商品ID
	VariantID   *uint     `gorm:"index" json:"variant_id,omitempty"`                         // 规格ID（可选）
	Title       string    `gorm:"not null" json:"title"`                                     // 商品标题快照
	Quantity    int       `gorm:"not null" json:"quantity"`                                  // 数量
	PriceAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 单价快照
	CreatedAt   time.Time `json:"created_at"`                                                // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
