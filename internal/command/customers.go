package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterCustomerCommands 注册客户命令
func RegisterCustomerCommands(r *Registry, customers *service.CustomerService) {
	r.Register(Spec{
		Name:        "list_customers",
		Description: "List customers with optional search over email, name and phone.",
		Enums: map[string][]string{
			"sort_order": {constants.SortAsc, constants.SortDesc},
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var filter repository.CustomerListFilter
			var err error
			if filter.Search, err = args.String("search"); err != nil {
				return "", err
			}
			if filter.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			if filter.Sort, err = parseSort(args); err != nil {
				return "", err
			}
			if filter.Window, err = parseWindow(args); err != nil {
				return "", err
			}
			items, total, err := customers.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "get_customer",
		Description: "Get a single customer by id or email.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			email, err := args.String("email")
			if err != nil {
				return "", err
			}
			if id == 0 && email == "" {
				return "", errIDOrSlug
			}
			customer, err := customers.Get(id, email)
			if err != nil {
				return "", err
			}
			return renderJSON(customer)
		},
	})

	r.Register(Spec{
		Name:        "create_customer",
		Description: "Create a customer record.",
		Required:    []string{"email", "name"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateCustomerInput
			var err error
			if input.Email, err = args.String("email"); err != nil {
				return "", err
			}
			if input.Name, err = args.String("name"); err != nil {
				return "", err
			}
			if input.Phone, err = args.String("phone"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			customer, err := customers.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(customer)
		},
	})

	r.Register(Spec{
		Name:        "update_customer",
		Description: "Update customer fields. Omitted fields are left unchanged.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateCustomerInput
			if input.Email, err = args.StringPtr("email"); err != nil {
				return "", err
			}
			if input.Name, err = args.StringPtr("name"); err != nil {
				return "", err
			}
			if input.Phone, err = args.StringPtr("phone"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			customer, err := customers.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(customer)
		},
	})

	r.Register(Spec{
		Name:        "delete_customer",
		Description: "Delete a customer by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := customers.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
