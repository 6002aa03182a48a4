package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterCurrencyCommands 注册货币命令
func RegisterCurrencyCommands(r *Registry, currencies *service.CurrencyService) {
	r.Register(Spec{
		Name:        "list_currencies",
		Description: "List all currencies.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			items, err := currencies.List()
			if err != nil {
				return "", err
			}
			return renderList(int64(len(items)), items)
		},
	})

	r.Register(Spec{
		Name:        "create_currency",
		Description: "Create a currency. Setting is_default clears the default flag on every other currency first.",
		Required:    []string{"code", "name"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateCurrencyInput
			var err error
			if input.Code, err = args.String("code"); err != nil {
				return "", err
			}
			if input.Name, err = args.String("name"); err != nil {
				return "", err
			}
			if input.Symbol, err = args.String("symbol"); err != nil {
				return "", err
			}
			if input.ExchangeRate, err = args.Decimal("exchange_rate"); err != nil {
				return "", err
			}
			if input.IsDefault, err = args.Bool("is_default"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			currency, err := currencies.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(currency)
		},
	})

	r.Register(Spec{
		Name:        "update_currency",
		Description: "Update currency fields. Setting is_default clears the default flag on every other currency first.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateCurrencyInput
			if input.Name, err = args.StringPtr("name"); err != nil {
				return "", err
			}
			if input.Symbol, err = args.StringPtr("symbol"); err != nil {
				return "", err
			}
			if input.ExchangeRate, err = args.DecimalPtr("exchange_rate"); err != nil {
				return "", err
			}
			if input.IsDefault, err = args.BoolPtr("is_default"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			currency, err := currencies.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(currency)
		},
	})

	r.Register(Spec{
		Name:        "delete_currency",
		Description: "Delete a currency by id. The default currency cannot be deleted.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := currencies.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
