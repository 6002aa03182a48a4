package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterProductCommands 注册商品命令
func RegisterProductCommands(r *Registry, products *service.ProductService) {
	r.Register(Spec{
		Name:        "list_products",
		Description: "List products with optional search, filters, sorting and windowing. Search is a literal substring match over name, description and SKU.",
		Enums: map[string][]string{
			"sort_order": {constants.SortAsc, constants.SortDesc},
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			filter, err := parseProductFilter(args)
			if err != nil {
				return "", err
			}
			items, total, err := products.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "get_product",
		Description: "Get a single product by id or slug.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			slug, err := args.String("slug")
			if err != nil {
				return "", err
			}
			if id == 0 && slug == "" {
				return "", errIDOrSlug
			}
			product, err := products.Get(id, slug)
			if err != nil {
				return "", err
			}
			return renderJSON(product)
		},
	})

	r.Register(Spec{
		Name:        "create_product",
		Description: "Create a product. Slug is derived from the name when omitted.",
		Required:    []string{"name", "base_price"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			input, err := parseCreateProductInput(args)
			if err != nil {
				return "", err
			}
			product, err := products.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(product)
		},
	})

	r.Register(Spec{
		Name:        "update_product",
		Description: "Update product fields. Omitted fields are left unchanged.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			input, err := parseUpdateProductInput(args)
			if err != nil {
				return "", err
			}
			product, err := products.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(product)
		},
	})

	r.Register(Spec{
		Name:        "delete_product",
		Description: "Delete a product by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := products.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})

	r.Register(Spec{
		Name:        "update_stock",
		Description: "Set a product's absolute stock quantity (floored at zero).",
		Required:    []string{"id", "stock_quantity"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			quantity, err := args.Int("stock_quantity")
			if err != nil {
				return "", err
			}
			product, err := products.UpdateStock(id, quantity)
			if err != nil {
				return "", err
			}
			return renderJSON(product)
		},
	})

	r.Register(Spec{
		Name:        "bulk_update_products",
		Description: "Apply the same field updates to multiple products, reporting per-product outcomes.",
		Required:    []string{"product_ids"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			ids, err := args.UintSlice("product_ids")
			if err != nil {
				return "", err
			}
			input, err := parseUpdateProductInput(args)
			if err != nil {
				return "", err
			}
			results := products.BulkUpdate(ids, input)
			return renderJSON(results)
		},
	})
}

func parseProductFilter(args Args) (repository.ProductListFilter, error) {
	var filter repository.ProductListFilter
	var err error
	if filter.Search, err = args.String("search"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = args.UintPtr("category_id"); err != nil {
		return filter, err
	}
	if filter.IsActive, err = args.BoolPtr("is_active"); err != nil {
		return filter, err
	}
	if filter.IsFeatured, err = args.BoolPtr("is_featured"); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = args.DecimalPtr("min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = args.DecimalPtr("max_price"); err != nil {
		return filter, err
	}
	if filter.MinStock, err = args.IntPtr("min_stock"); err != nil {
		return filter, err
	}
	if filter.MaxStock, err = args.IntPtr("max_stock"); err != nil {
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

func parseCreateProductInput(args Args) (service.CreateProductInput, error) {
	var input service.CreateProductInput
	var err error
	if input.Name, err = args.String("name"); err != nil {
		return input, err
	}
	if input.Slug, err = args.String("slug"); err != nil {
		return input, err
	}
	if input.SKU, err = args.String("sku"); err != nil {
		return input, err
	}
	if input.Description, err = args.String("description"); err != nil {
		return input, err
	}
	if input.CategoryID, err = args.UintPtr("category_id"); err != nil {
		return input, err
	}
	if input.BasePrice, err = args.Decimal("base_price"); err != nil {
		return input, err
	}
	if input.CompareAtPrice, err = args.Decimal("compare_at_price"); err != nil {
		return input, err
	}
	if input.StockQuantity, err = args.Int("stock_quantity"); err != nil {
		return input, err
	}
	if input.LowStockThreshold, err = args.IntPtr("low_stock_threshold"); err != nil {
		return input, err
	}
	if input.Images, err = args.StringSlice("images"); err != nil {
		return input, err
	}
	if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
		return input, err
	}
	if input.IsFeatured, err = args.Bool("is_featured"); err != nil {
		return input, err
	}
	return input, nil
}

func parseUpdateProductInput(args Args) (service.UpdateProductInput, error) {
	var input service.UpdateProductInput
	var err error
	if input.Name, err = args.StringPtr("name"); err != nil {
		return input, err
	}
	if input.Slug, err = args.StringPtr("slug"); err != nil {
		return input, err
	}
	if input.SKU, err = args.StringPtr("sku"); err != nil {
		return input, err
	}
	if input.Description, err = args.StringPtr("description"); err != nil {
		return input, err
	}
	if input.CategoryID, err = args.UintPtr("category_id"); err != nil {
		return input, err
	}
	if input.BasePrice, err = args.DecimalPtr("base_price"); err != nil {
		return input, err
	}
	if input.CompareAtPrice, err = args.DecimalPtr("compare_at_price"); err != nil {
		return input, err
	}
	if input.StockQuantity, err = args.IntPtr("stock_quantity"); err != nil {
		return input, err
	}
	if input.LowStockThreshold, err = args.IntPtr("low_stock_threshold"); err != nil {
		return input, err
	}
	if input.Images, err = args.StringSlice("images"); err != nil {
		return input, err
	}
	if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
		return input, err
	}
	if input.IsFeatured, err = args.BoolPtr("is_featured"); err != nil {
		return input, err
	}
	return input, nil
}
