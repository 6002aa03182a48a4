package models

import "time"

// Coupon 优惠券表
type Coupon struct {
	ID            uint       `gorm:"primarykey" json:"id"`                                         // 主键
	Code          string     `gorm:"uniqueIndex;not null" json:"code"`                             // 券码
	DiscountType  string     `gorm:"not null" json:"discount_type"`                                // 折扣类型（percentage/fixed）
	DiscountValue Money      `gorm:"type:decimal(20,2);not null;default:0" json:"discount_value"`  // 折扣值
	MinPurchase   Money      `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase"`    // 最低消费
	UsageLimit    int        `gorm:"not null;default:0" json:"usage_limit"`                        // 使用上限（0 不限）
	UsedCount     int        `gorm:"not null;default:0" json:"used_count"`                         // 已使用次数
	IsActive      bool       `gorm:"default:true;index" json:"is_active"`                          // 是否启用
	StartsAt      *time.Time `json:"starts_at,omitempty"`                                          // 生效时间
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`                                         // 失效时间
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt     time.Time  `json:"updated_at"`                                                   // 更新时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
