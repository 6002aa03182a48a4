package models

import "time"

// AdminUser 管理员表
type AdminUser struct {
	ID           uint      `gorm:"primarykey" json:"id"`                         // 主键
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`            // 邮箱
	Name         string    `gorm:"not null" json:"name"`                         // 姓名
	PasswordHash string    `gorm:"not null" json:"-"`                            // 密码哈希（bcrypt）
	Role         string    `gorm:"not null;default:'admin'" json:"role"`         // 角色
	IsActive     bool      `gorm:"default:true" json:"is_active"`                // 是否启用
	CreatedAt    time.Time `json:"created_at"`                                   // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                   // 更新时间
}

// TableName 指定表名
func (AdminUser) TableName() string {
	return "admin_users"
}
