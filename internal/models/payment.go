package models

import "time"

// Payment 支付记录表（只读账本，后台仅查询与状态核对）
type Payment struct {
	ID             uint       `gorm:"primarykey" json:"id"`                                // 主键
	RegistrationID *uint      `gorm:"index" json:"registration_id,omitempty"`              // 报名ID（活动缴费）
	OrderNo        string     `gorm:"index" json:"order_no"`                               // 商城订单编号（商城付款）
	UserID         string     `gorm:"index" json:"user_id"`                                // 付款用户ID
	Amount         Money      `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 金额
	Method         string     `gorm:"type:varchar(32)" json:"method"`                      // 支付渠道
	Status         string     `gorm:"type:varchar(20);index;not null" json:"status"`       // 状态（PENDING/PAID/FAILED/EXPIRED）
	ExternalID     string     `gorm:"index" json:"external_id"`                            // 网关流水号
	PaidAt         *time.Time `json:"paid_at,omitempty"`                                   // 支付完成时间
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt      time.Time  `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
