package models

import "time"

// Notification 通知表（只追加，已读标记除外不做修改）
type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	Type      string    `gorm:"type:varchar(20);index;not null" json:"type"`   // 类型（order/payment/stock）
	Title     string    `gorm:"not null" json:"title"`                         // 标题
	Message   string    `gorm:"type:text" json:"message"`                      // 正文
	RefID     string    `gorm:"index" json:"ref_id"`                           // 关联对象ID（订单号、商品ID等）
	Read      bool      `gorm:"not null;default:false;index" json:"read"`      // 是否已读
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
