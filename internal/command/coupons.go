package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterCouponCommands 注册优惠券命令
func RegisterCouponCommands(r *Registry, coupons *service.CouponService) {
	r.Register(Spec{
		Name:        "list_coupons",
		Description: "List coupons with optional code search, type and active filters.",
		Enums: map[string][]string{
			"discount_type": constants.DiscountTypes,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var filter repository.CouponListFilter
			var err error
			if filter.Search, err = args.String("search"); err != nil {
				return "", err
			}
			if filter.DiscountType, err = args.String("discount_type"); err != nil {
				return "", err
			}
			if filter.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			if filter.Window, err = parseWindow(args); err != nil {
				return "", err
			}
			items, total, err := coupons.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "create_coupon",
		Description: "Create a coupon. Codes are stored uppercase.",
		Required:    []string{"code", "discount_type", "discount_value"},
		Enums: map[string][]string{
			"discount_type": constants.DiscountTypes,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateCouponInput
			var err error
			if input.Code, err = args.String("code"); err != nil {
				return "", err
			}
			if input.DiscountType, err = args.String("discount_type"); err != nil {
				return "", err
			}
			if input.DiscountValue, err = args.Decimal("discount_value"); err != nil {
				return "", err
			}
			if input.MinPurchase, err = args.Decimal("min_purchase"); err != nil {
				return "", err
			}
			if input.UsageLimit, err = args.Int("usage_limit"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			if input.StartsAt, err = args.TimePtr("starts_at"); err != nil {
				return "", err
			}
			if input.ExpiresAt, err = args.TimePtr("expires_at"); err != nil {
				return "", err
			}
			coupon, err := coupons.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(coupon)
		},
	})

	r.Register(Spec{
		Name:        "update_coupon",
		Description: "Update coupon fields. Omitted fields are left unchanged.",
		Required:    []string{"id"},
		Enums: map[string][]string{
			"discount_type": constants.DiscountTypes,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateCouponInput
			if input.Code, err = args.StringPtr("code"); err != nil {
				return "", err
			}
			if input.DiscountType, err = args.StringPtr("discount_type"); err != nil {
				return "", err
			}
			if input.DiscountValue, err = args.DecimalPtr("discount_value"); err != nil {
				return "", err
			}
			if input.MinPurchase, err = args.DecimalPtr("min_purchase"); err != nil {
				return "", err
			}
			if input.UsageLimit, err = args.IntPtr("usage_limit"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			if input.StartsAt, err = args.TimePtr("starts_at"); err != nil {
				return "", err
			}
			if input.ExpiresAt, err = args.TimePtr("expires_at"); err != nil {
				return "", err
			}
			coupon, err := coupons.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(coupon)
		},
	})

	r.Register(Spec{
		Name:        "delete_coupon",
		Description: "Delete a coupon by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := coupons.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
