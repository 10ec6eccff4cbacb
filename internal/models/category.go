package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类表
// 删除分类不会级联更新引用它的商品（软引用）。
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`    // 主键
	Title     string         `gorm:"not null" json:"title"`   // 分类名称
	CreatedAt time.Time      `gorm:"index" json:"created_at"` // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`          // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
