package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration 活动报名表（归属于某个活动）
type Registration struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                // 主键
	FantasyID     uint           `gorm:"not null;index" json:"fantasy_id"`                    // 活动ID
	UserID        string         `gorm:"index;not null" json:"user_id"`                       // 报名用户ID（外部身份系统）
	Name          string         `gorm:"not null" json:"name"`                                // 报名人姓名
	Phone         string         `json:"phone"`                                               // 联系电话
	TeamID        *uint          `gorm:"index" json:"team_id,omitempty"`                      // 所属队伍ID（可选）
	PaymentStatus string         `gorm:"type:varchar(20);index;not null" json:"payment_status"` // 支付状态（PENDING/PAID/FAILED/EXPIRED）
	Amount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 应付金额
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间

	Fantasy *Fantasy `gorm:"foreignKey:FantasyID" json:"fantasy,omitempty"` // 关联活动
	Team    *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`       // 关联队伍
}

// TableName 指定表名
func (Registration) TableName() string {
	return "registrations"
}
