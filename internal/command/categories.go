package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterCategoryCommands 注册分类命令
func RegisterCategoryCommands(r *Registry, categories *service.CategoryService) {
	r.Register(Spec{
		Name:        "list_categories",
		Description: "List all categories ordered by sort weight.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			items, err := categories.List()
			if err != nil {
				return "", err
			}
			return renderList(int64(len(items)), items)
		},
	})

	r.Register(Spec{
		Name:        "create_category",
		Description: "Create a category. Slug is derived from the name when omitted.",
		Required:    []string{"name"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateCategoryInput
			var err error
			if input.Name, err = args.String("name"); err != nil {
				return "", err
			}
			if input.Slug, err = args.String("slug"); err != nil {
				return "", err
			}
			if input.ParentID, err = args.UintPtr("parent_id"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.Int("sort_order"); err != nil {
				return "", err
			}
			category, err := categories.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(category)
		},
	})

	r.Register(Spec{
		Name:        "update_category",
		Description: "Update category fields. Omitted fields are left unchanged.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateCategoryInput
			if input.Name, err = args.StringPtr("name"); err != nil {
				return "", err
			}
			if input.Slug, err = args.StringPtr("slug"); err != nil {
				return "", err
			}
			if input.ParentID, err = args.UintPtr("parent_id"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.IntPtr("sort_order"); err != nil {
				return "", err
			}
			category, err := categories.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(category)
		},
	})

	r.Register(Spec{
		Name:        "delete_category",
		Description: "Delete a category by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := categories.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
