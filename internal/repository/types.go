package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SortSpec 排序说明（字段与方向均来自白名单）
type SortSpec struct {
	Field     string
	Direction string
}

// Window 列表窗口（limit/offset 合并为一个结果区间）
type Window struct {
	Limit  int
	Offset int
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Search     string
	CategoryID *uint
	IsActive   *bool
	IsFeatured *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinStock   *int
	MaxStock   *int
	Sort       SortSpec
	Window     Window
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Search        string
	Status        string
	PaymentStatus string
	CustomerEmail string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	MinTotal      *decimal.Decimal
	MaxTotal      *decimal.Decimal
	Sort          SortSpec
	Window        Window
}

// CustomerListFilter 查询客户列表的过滤条件
type CustomerListFilter struct {
	Search   string
	IsActive *bool
	Sort     SortSpec
	Window   Window
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	ProductID *uint
	Status    string
	MinRating *int
	MaxRating *int
	Sort      SortSpec
	Window    Window
}

// CouponListFilter 查询优惠券列表的过滤条件
type CouponListFilter struct {
	Search       string
	DiscountType string
	IsActive     *bool
	Window       Window
}

// PageListFilter 查询页面列表的过滤条件
type PageListFilter struct {
	Search      string
	IsPublished *bool
	Window      Window
}
