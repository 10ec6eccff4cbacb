package models

import (
	"time"

	"gorm.io/gorm"
)

// Voucher 优惠券表
// Code 持久化时恒为规范化形式（去空格并转大写）。
type Voucher struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Code        string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`           // 优惠码（规范化后）
	Type        string         `gorm:"type:varchar(20);not null" json:"type"`                       // 类型（percentage/flat）
	Value       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"value"`          // 折扣值（百分比或固定金额）
	MinPurchase Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase"`   // 最低消费门槛
	MaxDiscount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount"`   // 百分比券封顶金额（0 表示不封顶）
	ValidUntil  time.Time      `gorm:"index;not null" json:"valid_until"`                           // 过期时间
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`                      // 是否启用
	UsageCount  int            `gorm:"not null;default:0" json:"usage_count"`                       // 已使用次数
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Voucher) TableName() string {
	return "vouchers"
}
