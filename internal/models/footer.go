package models

import "time"

// FooterSection 页脚栏目表
type FooterSection struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	Title     string    `gorm:"not null" json:"title"`             // 栏目标题
	SortOrder int       `gorm:"default:0;index" json:"sort_order"` // 排序权重
	IsActive  bool      `gorm:"default:true" json:"is_active"`     // 是否展示
	CreatedAt time.Time `json:"created_at"`                        // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                        // 更新时间

	Links []FooterLink `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"links,omitempty"` // 栏目链接
}

// TableName 指定表名
func (FooterSection) TableName() string {
	return "footer_sections"
}

// FooterLink 页脚链接表
type FooterLink struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	SectionID uint      `gorm:"index;not null" json:"section_id"`  // 栏目ID
	Label     string    `gorm:"not null" json:"label"`             // 链接文案
	URL       string    `gorm:"not null" json:"url"`               // 链接地址
	SortOrder int       `gorm:"default:0;index" json:"sort_order"` // 排序权重
	IsActive  bool      `gorm:"default:true" json:"is_active"`     // 是否展示
	CreatedAt time.Time `json:"created_at"`                        // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (FooterLink) TableName() string {
	return "footer_links"
}
