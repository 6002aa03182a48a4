package models

import "time"

// Review 商品评价表
type Review struct {
	ID            uint      `gorm:"primarykey" json:"id"`                           // 主键
	ProductID     uint      `gorm:"index;not null" json:"product_id"`               // 商品ID
	CustomerName  string    `gorm:"not null" json:"customer_name"`                  // 评价人姓名
	CustomerEmail string    `gorm:"index" json:"customer_email"`                    // 评价人邮箱
	Rating        int       `gorm:"not null" json:"rating"`                         // 评分（1-5）
	Title         string    `json:"title"`                                          // 评价标题
	Comment       string    `gorm:"type:text" json:"comment"`                       // 评价内容
	Status        string    `gorm:"index;not null;default:'pending'" json:"status"` // 审核状态
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                     // 更新时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
