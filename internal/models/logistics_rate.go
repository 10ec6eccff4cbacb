package models

import "time"

// LogisticsRate 物流费率表
// 主键为省份 slug（小写、空格转连字符），每个省份至多一条费率。
type LogisticsRate struct {
	ProvinceID   string    `gorm:"primarykey;type:varchar(64)" json:"province_id"`     // 省份slug
	ProvinceName string    `gorm:"not null" json:"province_name"`                      // 省份名称（规范写法）
	Price        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 运费
	CreatedAt    time.Time `json:"created_at"`                                         // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (LogisticsRate) TableName() string {
	return "logistics_rates"
}
