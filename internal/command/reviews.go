package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterReviewCommands 注册评价命令
func RegisterReviewCommands(r *Registry, reviews *service.ReviewService) {
	r.Register(Spec{
		Name:        "list_reviews",
		Description: "List reviews with optional product, status and rating range filters.",
		Enums: map[string][]string{
			"status":     constants.ReviewStatuses,
			"sort_order": {constants.SortAsc, constants.SortDesc},
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var filter repository.ReviewListFilter
			var err error
			if filter.ProductID, err = args.UintPtr("product_id"); err != nil {
				return "", err
			}
			if filter.Status, err = args.String("status"); err != nil {
				return "", err
			}
			if filter.MinRating, err = args.IntPtr("min_rating"); err != nil {
				return "", err
			}
			if filter.MaxRating, err = args.IntPtr("max_rating"); err != nil {
				return "", err
			}
			if filter.Sort, err = parseSort(args); err != nil {
				return "", err
			}
			if filter.Window, err = parseWindow(args); err != nil {
				return "", err
			}
			items, total, err := reviews.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "create_review",
		Description: "Create a review for a product. Rating must be between 1 and 5.",
		Required:    []string{"product_id", "customer_name", "rating"},
		Enums: map[string][]string{
			"status": constants.ReviewStatuses,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateReviewInput
			var err error
			if input.ProductID, err = args.Uint("product_id"); err != nil {
				return "", err
			}
			if input.CustomerName, err = args.String("customer_name"); err != nil {
				return "", err
			}
			if input.CustomerEmail, err = args.String("customer_email"); err != nil {
				return "", err
			}
			if input.Rating, err = args.Int("rating"); err != nil {
				return "", err
			}
			if input.Title, err = args.String("title"); err != nil {
				return "", err
			}
			if input.Comment, err = args.String("comment"); err != nil {
				return "", err
			}
			if input.Status, err = args.String("status"); err != nil {
				return "", err
			}
			review, err := reviews.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(review)
		},
	})

	r.Register(Spec{
		Name:        "update_review",
		Description: "Update review fields, typically the moderation status.",
		Required:    []string{"id"},
		Enums: map[string][]string{
			"status": constants.ReviewStatuses,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateReviewInput
			if input.Rating, err = args.IntPtr("rating"); err != nil {
				return "", err
			}
			if input.Title, err = args.StringPtr("title"); err != nil {
				return "", err
			}
			if input.Comment, err = args.StringPtr("comment"); err != nil {
				return "", err
			}
			if input.Status, err = args.StringPtr("status"); err != nil {
				return "", err
			}
			review, err := reviews.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(review)
		},
	})

	r.Register(Spec{
		Name:        "delete_review",
		Description: "Delete a review by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := reviews.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
