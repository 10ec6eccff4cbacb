package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductVariant 商品规格表
type ProductVariant struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	ProductID   uint           `gorm:"not null;index" json:"product_id"`                          // 商品ID
	VariantKey  string         `gorm:"type:varchar(64);not null;index" json:"variant_key"`        // 生成的规格标识
	Name        string         `gorm:"not null" json:"name"`                                      // 规格名称
	SKU         string         `gorm:"type:varchar(64);index" json:"sku"`                         // SKU编码
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 规格价格
	Stock       int            `gorm:"not null;default:0" json:"stock"`                           // 规格库存（非负）
	CreatedAt   time.Time      `json:"created_at"`                                                // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
