package models

import "time"

// PaymentMethod 支付方式表
type PaymentMethod struct {
	ID          uint      `gorm:"primarykey" json:"id"`                             // 主键
	Code        string    `gorm:"uniqueIndex;not null;type:varchar(50)" json:"code"` // 方式代码（cod/card/...）
	Name        string    `gorm:"not null" json:"name"`                             // 方式名称
	Description string    `gorm:"type:text" json:"description"`                     // 描述
	ConfigJSON  JSON      `gorm:"type:json" json:"config,omitempty"`                // 配置（不透明）
	IsActive    bool      `gorm:"default:true" json:"is_active"`                    // 是否启用
	SortOrder   int       `gorm:"default:0" json:"sort_order"`                      // 排序权重
	CreatedAt   time.Time `json:"created_at"`                                       // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                       // 更新时间
}

// TableName 指定表名
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
