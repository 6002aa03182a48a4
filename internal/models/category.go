package models

import "time"

// Category 分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	Name      string    `gorm:"not null" json:"name"`              // 分类名称
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`  // 父分类ID（自引用树，不做环检查）
	SortOrder int       `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt time.Time `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
