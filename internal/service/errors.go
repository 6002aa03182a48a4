package service

import "errors"

// 服务层错误定义
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCurrencyNotFound      = errors.New("currency not found")
	ErrPageNotFound          = errors.New("page not found")
	ErrFooterSectionNotFound = errors.New("footer section not found")
	ErrFooterLinkNotFound    = errors.New("footer link not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrAdminUserNotFound     = errors.New("admin user not found")

	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidOrderItem = errors.New("order item quantity must be positive")
	ErrOrderTerminal    = errors.New("order is in a terminal state")

	ErrSlugTaken  = errors.New("slug already exists")
	ErrCodeTaken  = errors.New("code already exists")
	ErrEmailTaken = errors.New("email already exists")

	ErrDefaultCurrencyDelete = errors.New("cannot delete the default currency")

	ErrQueryNotReadOnly     = errors.New("only SELECT statements are allowed")
	ErrRawQueryUnsupported  = errors.New("the store does not support ad hoc queries")
)

// containsString 判断枚举域是否包含指定值
func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
