package models

import "time"

// TvCategory 电视栏目分类表
// SortOrder 决定前台展示顺序，新分类默认排到末尾（最大值+1）。
type TvCategory struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	Name      string    `gorm:"not null" json:"name"`                          // 分类名称
	SortOrder int       `gorm:"column:sort_order;not null;index" json:"order"` // 展示顺序
	CreatedAt time.Time `json:"created_at"`                                    // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                    // 更新时间

	Contents []TvContent `gorm:"foreignKey:CategoryID" json:"contents,omitempty"` // 分类下内容
}

// TableName 指定表名
func (TvCategory) TableName() string {
	return "tv_categories"
}

// TvContent 电视内容表（归属于某个分类，随分类级联删除）
type TvContent struct {
	ID          uint      `gorm:"primarykey" json:"id"`                 // 主键
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`    // 所属分类ID
	Title       string    `gorm:"not null" json:"title"`                // 标题
	Description string    `gorm:"type:text" json:"description"`         // 描述
	VideoURL    string    `gorm:"column:video_url" json:"video_url"`    // 视频地址
	Thumbnail   string    `json:"thumbnail"`                            // 封面图
	CreatedAt   time.Time `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                           // 更新时间
}

// TableName 指定表名
func (TvContent) TableName() string {
	return "tv_contents"
}
