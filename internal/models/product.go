package models

import (
	"time"
)

// Product 商品表
type Product struct {
	ID                uint        `gorm:"primarykey" json:"id"`                                           // 主键
	CategoryID        *uint       `gorm:"index" json:"category_id,omitempty"`                             // 分类ID
	Name              string      `gorm:"not null" json:"name"`                                           // 商品名称
	Slug              string      `gorm:"uniqueIndex;not null" json:"slug"`                               // 唯一标识
	SKU               string      `gorm:"type:varchar(100);index" json:"sku"`                             // 商品编码
	Description       string      `gorm:"type:text" json:"description"`                                   // 商品描述
	BasePrice         Money       `gorm:"type:decimal(20,2);not null;default:0" json:"base_price"`        // 售价
	CompareAtPrice    Money       `gorm:"type:decimal(20,2);not null;default:0" json:"compare_at_price"`  // 划线价
	StockQuantity     int         `gorm:"not null;default:0" json:"stock_quantity"`                       // 库存数量
	LowStockThreshold int         `gorm:"not null;default:5" json:"low_stock_threshold"`                  // 低库存阈值
	Images            StringArray `gorm:"type:json" json:"images"`                                        // 图片数组
	IsActive          bool        `gorm:"default:true;index" json:"is_active"`                            // 是否上架
	IsFeatured        bool        `gorm:"default:false;index" json:"is_featured"`                         // 是否推荐
	AverageRating     float64     `gorm:"not null;default:0" json:"average_rating"`                       // 平均评分（由外部触发器维护）
	ReviewCount       int         `gorm:"not null;default:0" json:"review_count"`                         // 评价数量（由外部触发器维护）
	CreatedAt         time.Time   `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt         time.Time   `json:"updated_at"`                                                     // 更新时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// IsLowStock 是否处于低库存
func (p *Product) IsLowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity <= p.LowStockThreshold
}
