package models

import (
	"time"

	"gorm.io/gorm"
)

// Shoe 球鞋租借库存表
type Shoe struct {
	ID        uint           `gorm:"primarykey" json:"id"`                               // 主键
	Brand     string         `gorm:"index" json:"brand"`                                 // 品牌
	Model     string         `gorm:"not null" json:"model"`                              // 型号
	Size      string         `gorm:"type:varchar(10);index" json:"size"`                 // 尺码
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 租金
	Stock     int            `gorm:"not null;default:0" json:"stock"`                    // 可借数量
	Image     string         `json:"image"`                                              // 图片
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`             // 是否上架
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Shoe) TableName() string {
	return "shoes"
}
