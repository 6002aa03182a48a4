package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// CouponService 优惠券服务
type CouponService struct {
	coupons repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(coupons repository.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

// CreateCouponInput 创建优惠券参数
type CreateCouponInput struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	UsageLimit    int
	IsActive      *bool
	StartsAt      *time.Time
	ExpiresAt     *time.Time
}

// UpdateCouponInput 更新优惠券参数，nil 字段不变
type UpdateCouponInput struct {
	Code          *string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	MinPurchase   *decimal.Decimal
	UsageLimit    *int
	IsActive      *bool
	StartsAt      *time.Time
	ExpiresAt     *time.Time
}

// List 优惠券列表
func (s *CouponService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.coupons.List(filter)
}

// Create 创建优惠券，券码统一大写
func (s *CouponService) Create(input CreateCouponInput) (*models.Coupon, error) {
	if !containsString(constants.DiscountTypes, input.DiscountType) {
		return nil, fmt.Errorf("invalid discount type: %s", input.DiscountType)
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	existing, err := s.coupons.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrCodeTaken, code)
	}

	coupon := &models.Coupon{
		Code:          code,
		DiscountType:  input.DiscountType,
		DiscountValue: models.NewMoneyFromDecimal(input.DiscountValue),
		MinPurchase:   models.NewMoneyFromDecimal(input.MinPurchase),
		UsageLimit:    input.UsageLimit,
		IsActive:      true,
		StartsAt:      input.StartsAt,
		ExpiresAt:     input.ExpiresAt,
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	if err := s.coupons.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券
func (s *CouponService) Update(id uint, input UpdateCouponInput) (*models.Coupon, error) {
	coupon, err := s.coupons.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	fields := map[string]interface{}{}
	if input.Code != nil {
		fields["code"] = strings.ToUpper(strings.TrimSpace(*input.Code))
	}
	if input.DiscountType != nil {
		if !containsString(constants.DiscountTypes, *input.DiscountType) {
			return nil, fmt.Errorf("invalid discount type: %s", *input.DiscountType)
		}
		fields["discount_type"] = *input.DiscountType
	}
	if input.DiscountValue != nil {
		fields["discount_value"] = models.NewMoneyFromDecimal(*input.DiscountValue)
	}
	if input.MinPurchase != nil {
		fields["min_purchase"] = models.NewMoneyFromDecimal(*input.MinPurchase)
	}
	if input.UsageLimit != nil {
		fields["usage_limit"] = *input.UsageLimit
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.StartsAt != nil {
		fields["starts_at"] = *input.StartsAt
	}
	if input.ExpiresAt != nil {
		fields["expires_at"] = *input.ExpiresAt
	}
	if len(fields) > 0 {
		if err := s.coupons.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.coupons.GetByID(id)
}

// Delete 删除优惠券
func (s *CouponService) Delete(id uint) error {
	coupon, err := s.coupons.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	return s.coupons.Delete(id)
}
