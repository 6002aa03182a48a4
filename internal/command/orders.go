package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterOrderCommands 注册订单命令
func RegisterOrderCommands(r *Registry, orders *service.OrderService) {
	r.Register(Spec{
		Name:        "list_orders",
		Description: "List orders with optional search, status filters, date and amount ranges. Search matches order number, customer email and customer name.",
		Enums: map[string][]string{
			"status":         constants.OrderStatuses,
			"payment_status": constants.PaymentStatuses,
			"sort_order":     {constants.SortAsc, constants.SortDesc},
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			filter, err := parseOrderFilter(args)
			if err != nil {
				return "", err
			}
			items, total, err := orders.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "get_order",
		Description: "Get a single order with its items, by id or order number.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			number, err := args.String("order_number")
			if err != nil {
				return "", err
			}
			if id == 0 && number == "" {
				return "", errIDOrSlug
			}
			order, err := orders.Get(id, number)
			if err != nil {
				return "", err
			}
			return renderJSON(order)
		},
	})

	r.Register(Spec{
		Name:        "create_order",
		Description: "Create an order. Items are priced at the product's current base price; stock is decremented per item and per-item failures are reported, not rolled back.",
		Required:    []string{"customer_email", "customer_name", "items"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			input, err := parseCreateOrderInput(args)
			if err != nil {
				return "", err
			}
			result, err := orders.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{
				"order":          result.Order,
				"stock_warnings": result.StockWarnings,
			})
		},
	})

	r.Register(Spec{
		Name:        "update_order_status",
		Description: "Update the order status. A cancelled order is terminal; the payment axis is not touched.",
		Required:    []string{"id", "status"},
		Enums: map[string][]string{
			"status": constants.OrderStatuses,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			status, err := args.String("status")
			if err != nil {
				return "", err
			}
			order, err := orders.UpdateStatus(id, status)
			if err != nil {
				return "", err
			}
			return renderJSON(order)
		},
	})

	r.Register(Spec{
		Name:        "update_payment_status",
		Description: "Update the order payment status. Independent of the order status axis.",
		Required:    []string{"id", "payment_status"},
		Enums: map[string][]string{
			"payment_status": constants.PaymentStatuses,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			paymentStatus, err := args.String("payment_status")
			if err != nil {
				return "", err
			}
			order, err := orders.UpdatePaymentStatus(id, paymentStatus)
			if err != nil {
				return "", err
			}
			return renderJSON(order)
		},
	})

	r.Register(Spec{
		Name:        "add_order_note",
		Description: "Append a timestamped note to the order. Existing notes are never truncated.",
		Required:    []string{"id", "note"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			note, err := args.String("note")
			if err != nil {
				return "", err
			}
			order, err := orders.AddNote(id, note)
			if err != nil {
				return "", err
			}
			return renderJSON(order)
		},
	})

	r.Register(Spec{
		Name:        "cancel_order",
		Description: "Cancel an order. Restocks items by default (restock=false to skip); restore failures are reported but do not block the cancellation.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			restockPtr, err := args.BoolPtr("restock")
			if err != nil {
				return "", err
			}
			restock := true
			if restockPtr != nil {
				restock = *restockPtr
			}
			reason, err := args.String("reason")
			if err != nil {
				return "", err
			}
			result, err := orders.Cancel(id, restock, reason)
			if err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{
				"order":            result.Order,
				"restore_warnings": result.RestoreWarnings,
			})
		},
	})

	r.Register(Spec{
		Name:        "delete_order",
		Description: "Delete an order and its items.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := orders.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}

func parseOrderFilter(args Args) (repository.OrderListFilter, error) {
	var filter repository.OrderListFilter
	var err error
	if filter.Search, err = args.String("search"); err != nil {
		return filter, err
	}
	if filter.Status, err = args.String("status"); err != nil {
		return filter, err
	}
	if filter.PaymentStatus, err = args.String("payment_status"); err != nil {
		return filter, err
	}
	if filter.CustomerEmail, err = args.String("customer_email"); err != nil {
		return filter, err
	}
	if filter.CreatedFrom, err = args.TimePtr("created_from"); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = args.TimePtr("created_to"); err != nil {
		return filter, err
	}
	if filter.MinTotal, err = args.DecimalPtr("min_total"); err != nil {
		return filter, err
	}
	if filter.MaxTotal, err = args.DecimalPtr("max_total"); err != nil {
		return filter, err
	}
	if filter.Sort, err = parseSort(args); err != nil {
		return filter, err
	}
	if filter.Window, err = parseWindow(args); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseCreateOrderInput(args Args) (service.CreateOrderInput, error) {
	var input service.CreateOrderInput
	var err error
	if input.CustomerEmail, err = args.String("customer_email"); err != nil {
		return input, err
	}
	if input.CustomerName, err = args.String("customer_name"); err != nil {
		return input, err
	}
	if input.PaymentMethod, err = args.String("payment_method"); err != nil {
		return input, err
	}
	if input.Notes, err = args.String("notes"); err != nil {
		return input, err
	}
	address, err := args.Object("shipping_address")
	if err != nil {
		return input, err
	}
	if address != nil {
		input.ShippingAddress = models.JSON(address)
	}

	rawItems, err := args.ObjectList("items")
	if err != nil {
		return input, err
	}
	for _, raw := range rawItems {
		itemArgs := Args(raw)
		productID, err := itemArgs.Uint("product_id")
		if err != nil {
			return input, err
		}
		quantity, err := itemArgs.Int("quantity")
		if err != nil {
			return input, err
		}
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	return input, nil
}
