package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterPageCommands 注册静态页命令
func RegisterPageCommands(r *Registry, pages *service.PageService) {
	r.Register(Spec{
		Name:        "list_pages",
		Description: "List pages with optional title/slug search and published filter.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			var filter repository.PageListFilter
			var err error
			if filter.Search, err = args.String("search"); err != nil {
				return "", err
			}
			if filter.IsPublished, err = args.BoolPtr("is_published"); err != nil {
				return "", err
			}
			if filter.Window, err = parseWindow(args); err != nil {
				return "", err
			}
			items, total, err := pages.List(filter)
			if err != nil {
				return "", err
			}
			return renderList(total, items)
		},
	})

	r.Register(Spec{
		Name:        "get_page",
		Description: "Get a single page by id or slug.",
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
			page, err := pages.Get(id, slug)
			if err != nil {
				return "", err
			}
			return renderJSON(page)
		},
	})

	r.Register(Spec{
		Name:        "create_page",
		Description: "Create a page. Slug is derived from the title when omitted.",
		Required:    []string{"title"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreatePageInput
			var err error
			if input.Slug, err = args.String("slug"); err != nil {
				return "", err
			}
			if input.Title, err = args.String("title"); err != nil {
				return "", err
			}
			if input.Content, err = args.String("content"); err != nil {
				return "", err
			}
			if input.IsPublished, err = args.BoolPtr("is_published"); err != nil {
				return "", err
			}
			page, err := pages.Create(input)
			if err != nil {
				return "", err
			}
			return renderJSON(page)
		},
	})

	r.Register(Spec{
		Name:        "update_page",
		Description: "Update page fields. Omitted fields are left unchanged.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdatePageInput
			if input.Slug, err = args.StringPtr("slug"); err != nil {
				return "", err
			}
			if input.Title, err = args.StringPtr("title"); err != nil {
				return "", err
			}
			if input.Content, err = args.StringPtr("content"); err != nil {
				return "", err
			}
			if input.IsPublished, err = args.BoolPtr("is_published"); err != nil {
				return "", err
			}
			page, err := pages.Update(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(page)
		},
	})

	r.Register(Spec{
		Name:        "delete_page",
		Description: "Delete a page by id.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := pages.Delete(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})
}
