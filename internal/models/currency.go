package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency 货币表
// 不变量：任意时刻最多一条记录 is_default = true。
type Currency struct {
	ID           uint            `gorm:"primarykey" json:"id"`                                       // 主键
	Code         string          `gorm:"uniqueIndex;not null;type:varchar(10)" json:"code"`          // 货币代码（USD/AED/...）
	Name         string          `gorm:"not null" json:"name"`                                       // 货币名称
	Symbol       string          `gorm:"type:varchar(10)" json:"symbol"`                             // 货币符号
	ExchangeRate decimal.Decimal `gorm:"type:decimal(20,6);not null;default:1" json:"exchange_rate"` // 对默认货币汇率
	IsDefault    bool            `gorm:"default:false;index" json:"is_default"`                      // 是否默认货币
	IsActive     bool            `gorm:"default:true" json:"is_active"`                              // 是否启用
	CreatedAt    time.Time       `json:"created_at"`                                                 // 创建时间
	UpdatedAt    time.Time       `json:"updated_at"`                                                 // 更新时间
}

// TableName 指定表名
func (Currency) TableName() string {
	return "currencies"
}
