package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
// Stock 为聚合库存：存在规格时恒等于全部规格库存之和。
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Title       string         `gorm:"not null;index" json:"title"`                               // 商品标题
	Description string         `gorm:"type:text" json:"description"`                              // 商品描述
	Images      StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组（有序）
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 展示价格
	Stock       int            `gorm:"not null;default:0" json:"stock"`                           // 聚合库存
	CategoryID  uint           `gorm:"index" json:"category_id"`                                  // 分类ID（软引用，不做级联）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`  // 规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
