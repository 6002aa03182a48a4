package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses 订单状态枚举域
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 支付状态常量
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// PaymentStatuses 支付状态枚举域
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// 优惠券折扣类型常量
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// DiscountTypes 优惠券折扣类型枚举域
var DiscountTypes = []string{
	DiscountTypePercentage,
	DiscountTypeFixed,
}

// 评价状态常量
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ReviewStatuses 评价状态枚举域
var ReviewStatuses = []string{
	ReviewStatusPending,
	ReviewStatusApproved,
	ReviewStatusRejected,
}

// 排序方向常量
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// 商品排行指标常量
const (
	TopProductsByRevenue  = "revenue"
	TopProductsByQuantity = "quantity"
	TopProductsByRating   = "rating"
)

// 销售报表分组粒度常量
const (
	ReportGroupDay   = "day"
	ReportGroupWeek  = "week"
	ReportGroupMonth = "month"
)

// ReportGroups 销售报表分组粒度枚举域
var ReportGroups = []string{
	ReportGroupDay,
	ReportGroupWeek,
	ReportGroupMonth,
}

// OrderNumberPrefix 订单编号前缀
const OrderNumberPrefix = "TS-"

// DefaultWindowLimit 列表窗口默认宽度（仅提供 offset 时生效）
const DefaultWindowLimit = 50
