package models

import (
	"time"

	"gorm.io/gorm"
)

// Fantasy 趣味赛活动表
type Fantasy struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	Title       string         `gorm:"not null" json:"title"`                              // 活动名称
	Description string         `gorm:"type:text" json:"description"`                       // 活动描述
	Venue       string         `json:"venue"`                                              // 场地
	City        string         `gorm:"index" json:"city"`                                  // 城市
	EventDate   time.Time      `gorm:"index" json:"event_date"`                            // 活动日期
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 报名费
	Quota       int            `gorm:"not null;default:0" json:"quota"`                    // 名额上限
	Image       string         `json:"image"`                                              // 宣传图
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`             // 是否开放报名
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Registrations []Registration `gorm:"foreignKey:FantasyID" json:"registrations,omitempty"` // 报名记录
}

// TableName 指定表名
func (Fantasy) TableName() string {
	return "fantasies"
}
