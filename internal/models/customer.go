package models

import "time"

// Customer 客户表
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	Name      string    `gorm:"not null" json:"name"`              // 姓名
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`     // 电话
	IsActive  bool      `gorm:"default:true" json:"is_active"`     // 是否启用
	CreatedAt time.Time `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
