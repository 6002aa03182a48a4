package models

import "time"

// Order 订单表
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNumber     string    `gorm:"uniqueIndex;not null" json:"order_number"`                  // 订单编号
	CustomerEmail   string    `gorm:"index;not null" json:"customer_email"`                      // 客户邮箱
	CustomerName    string    `gorm:"not null" json:"customer_name"`                             // 客户姓名
	Status          string    `gorm:"index;not null;default:'pending'" json:"status"`            // 订单状态
	PaymentStatus   string    `gorm:"index;not null;default:'pending'" json:"payment_status"`    // 支付状态（与订单状态独立）
	PaymentMethod   string    `gorm:"type:varchar(50)" json:"payment_method,omitempty"`          // 支付方式
	Subtotal        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`     // 商品小计
	TotalAmount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	ShippingAddress JSON      `gorm:"type:json" json:"shipping_address,omitempty"`               // 收货地址（不透明结构）
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`                          // 备注（仅追加）
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time `gorm:"index" json:"updated_at"`                                   // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
