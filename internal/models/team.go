package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TShirt 队服规格
type TShirt struct {
	Size     string `json:"size"`     // 尺码
	Quantity int    `json:"quantity"` // 数量
}

// TShirtList 队服规格列表（JSON 存储）
type TShirtList []TShirt

// Value 实现 driver.Valuer 接口
func (l TShirtList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口
func (l *TShirtList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for TShirtList")
	}
	return json.Unmarshal(data, l)
}

// Team 参赛队伍表
type Team struct {
	ID        uint           `gorm:"primarykey" json:"id"`            // 主键
	Name      string         `gorm:"not null;index" json:"name"`      // 队伍名称
	Captain   string         `json:"captain"`                         // 队长姓名
	Phone     string         `json:"phone"`                           // 联系电话
	City      string         `gorm:"index" json:"city"`               // 所在城市
	Logo      string         `json:"logo"`                            // 队徽
	TShirts   TShirtList     `gorm:"type:json" json:"tshirts"`        // 队服规格
	CreatedAt time.Time      `gorm:"index" json:"created_at"`         // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                      // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                  // 软删除时间
}

// TableName 指定表名
func (Team) TableName() string {
	return "teams"
}
