package models

import "time"

// Page 静态页面表
type Page struct {
	ID          uint      `gorm:"primarykey" json:"id"`              // 主键
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识
	Title       string    `gorm:"not null" json:"title"`             // 页面标题
	Content     string    `gorm:"type:text" json:"content"`          // 页面内容
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	CreatedAt   time.Time `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (Page) TableName() string {
	return "pages"
}
