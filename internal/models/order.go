package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentInfo 订单支付信息（内嵌）
type PaymentInfo struct {
	Status     string `gorm:"column:payment_status;index;not null;default:'pending'" json:"status"` // 支付状态（pending/paid/failed）
	Method     string `gorm:"column:payment_method" json:"method"`                                  // 支付方式
	ExternalID string `gorm:"column:payment_external_id;index" json:"external_id"`                  // 外部网关单号
}

// ShippingAddress 收货地址（内嵌）
type ShippingAddress struct {
	ProvinceID   string `gorm:"column:shipping_province_id" json:"province_id"`     // 省份ID
	ProvinceName string `gorm:"column:shipping_province_name" json:"province_name"` // 省份名称
	FullAddress  string `gorm:"column:shipping_full_address" json:"full_address"`   // 详细地址
	PostalCode   string `gorm:"column:shipping_postal_code" json:"postal_code"`     // 邮编
}

// LogisticsInfo 物流信息（内嵌）
type LogisticsInfo struct {
	ProvinceID     string `gorm:"column:logistics_province_id" json:"province_id"`                           // 费率省份ID
	Price          Money  `gorm:"column:logistics_price;type:decimal(20,2);not null;default:0" json:"price"` // 运费
	TrackingNumber string `gorm:"column:logistics_tracking_number" json:"tracking_number"`                   // 运单号
}

// Order 订单表
// 定价不变式：FinalAmount == TotalAmount - DiscountAmount + Logistics.Price，
// 状态/运单号更新不得触碰任何定价字段。
type Order struct {
	ID             uint            `gorm:"primarykey" json:"id"`                                             // 主键
	OrderNo        string          `gorm:"uniqueIndex;not null" json:"order_no"`                             // 订单编号
	UserID         string          `gorm:"index;not null" json:"user_id"`                                    // 下单用户ID（外部身份系统）
	Status         string          `gorm:"index;not null;default:'pending'" json:"status"`                   // 订单状态
	TotalAmount    Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`        // 商品小计合计
	DiscountAmount Money           `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`            // 优惠金额
	FinalAmount    Money           `gorm:"type:decimal(20,2);not null;default:0" json:"final_amount"`        // 应付金额
	VoucherID      *uint           `gorm:"index" json:"voucher_id,omitempty"`                                // 使用的优惠券ID
	Payment        PaymentInfo     `gorm:"embedded" json:"payment"`                                          // 支付信息
	Shipping       ShippingAddress `gorm:"embedded" json:"shipping_address"`                                 // 收货地址
	Logistics      LogisticsInfo   `gorm:"embedded" json:"logistics"`                                        // 物流信息
	ReservedUntil  *time.Time      `gorm:"index" json:"reserved_until"`                                      // 库存预占截止时间
	CreatedAt      time.Time       `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt      time.Time       `json:"updated_at"`                                                       // 更新时间
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`                                                   // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
