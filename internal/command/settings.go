package command

import (
	"context"
	"fmt"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterSettingsCommands 注册站点配置命令
func RegisterSettingsCommands(r *Registry, settings *service.SettingsService) {
	r.Register(Spec{
		Name:        "get_store_settings",
		Description: "Get the store settings object.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			value, err := settings.GetSetting(models.SettingKeyStore)
			if err != nil {
				return "", err
			}
			return renderJSON(value)
		},
	})

	r.Register(Spec{
		Name:        "update_store_settings",
		Description: "Replace the store settings object.",
		Required:    []string{"settings"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			value, err := args.Object("settings")
			if err != nil {
				return "", err
			}
			updated, err := settings.UpdateSetting(models.SettingKeyStore, models.JSON(value))
			if err != nil {
				return "", err
			}
			return renderJSON(updated)
		},
	})

	r.Register(Spec{
		Name:        "get_hero_settings",
		Description: "Get the homepage hero settings object.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			value, err := settings.GetSetting(models.SettingKeyHero)
			if err != nil {
				return "", err
			}
			return renderJSON(value)
		},
	})

	r.Register(Spec{
		Name:        "update_hero_settings",
		Description: "Replace the homepage hero settings object.",
		Required:    []string{"settings"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			value, err := args.Object("settings")
			if err != nil {
				return "", err
			}
			updated, err := settings.UpdateSetting(models.SettingKeyHero, models.JSON(value))
			if err != nil {
				return "", err
			}
			return renderJSON(updated)
		},
	})

	r.Register(Spec{
		Name:        "list_footer_sections",
		Description: "List footer sections with their links.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			sections, err := settings.ListFooterSections()
			if err != nil {
				return "", err
			}
			return renderList(int64(len(sections)), sections)
		},
	})

	r.Register(Spec{
		Name:        "create_footer_section",
		Description: "Create a footer section.",
		Required:    []string{"title"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateFooterSectionInput
			var err error
			if input.Title, err = args.String("title"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.Int("sort_order"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			section, err := settings.CreateFooterSection(input)
			if err != nil {
				return "", err
			}
			return renderJSON(section)
		},
	})

	r.Register(Spec{
		Name:        "update_footer_section",
		Description: "Update footer section fields.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateFooterSectionInput
			if input.Title, err = args.StringPtr("title"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.IntPtr("sort_order"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			section, err := settings.UpdateFooterSection(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(section)
		},
	})

	r.Register(Spec{
		Name:        "delete_footer_section",
		Description: "Delete a footer section and its links.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := settings.DeleteFooterSection(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})

	r.Register(Spec{
		Name:        "create_footer_link",
		Description: "Create a link inside a footer section.",
		Required:    []string{"section_id", "label", "url"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateFooterLinkInput
			var err error
			if input.SectionID, err = args.Uint("section_id"); err != nil {
				return "", err
			}
			if input.Label, err = args.String("label"); err != nil {
				return "", err
			}
			if input.URL, err = args.String("url"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.Int("sort_order"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			link, err := settings.CreateFooterLink(input)
			if err != nil {
				return "", err
			}
			return renderJSON(link)
		},
	})

	r.Register(Spec{
		Name:        "update_footer_link",
		Description: "Update footer link fields.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdateFooterLinkInput
			if input.Label, err = args.StringPtr("label"); err != nil {
				return "", err
			}
			if input.URL, err = args.StringPtr("url"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.IntPtr("sort_order"); err != nil {
				return "", err
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			link, err := settings.UpdateFooterLink(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(link)
		},
	})

	r.Register(Spec{
		Name:        "delete_footer_link",
		Description: "Delete a footer link.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			if err := settings.DeleteFooterLink(id); err != nil {
				return "", err
			}
			return renderJSON(map[string]interface{}{"deleted": id})
		},
	})

	r.Register(Spec{
		Name:        "list_payment_methods",
		Description: "List configured payment methods.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			methods, err := settings.ListPaymentMethods()
			if err != nil {
				return "", err
			}
			return renderList(int64(len(methods)), methods)
		},
	})

	r.Register(Spec{
		Name:        "update_payment_method",
		Description: "Update payment method fields and configuration.",
		Required:    []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			id, err := args.Uint("id")
			if err != nil {
				return "", err
			}
			var input service.UpdatePaymentMethodInput
			if input.Name, err = args.StringPtr("name"); err != nil {
				return "", err
			}
			if input.Description, err = args.StringPtr("description"); err != nil {
				return "", err
			}
			config, err := args.Object("config")
			if err != nil {
				return "", err
			}
			if config != nil {
				input.Config = models.JSON(config)
			}
			if input.IsActive, err = args.BoolPtr("is_active"); err != nil {
				return "", err
			}
			if input.SortOrder, err = args.IntPtr("sort_order"); err != nil {
				return "", err
			}
			method, err := settings.UpdatePaymentMethod(id, input)
			if err != nil {
				return "", err
			}
			return renderJSON(method)
		},
	})

	r.Register(Spec{
		Name:        "list_admin_users",
		Description: "List admin users. Password hashes are never included.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			users, err := settings.ListAdminUsers()
			if err != nil {
				return "", err
			}
			return renderList(int64(len(users)), users)
		},
	})

	r.Register(Spec{
		Name:        "create_admin_user",
		Description: "Create an admin user with a bcrypt-hashed password.",
		Required:    []string{"email", "name", "password"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			var input service.CreateAdminUserInput
			var err error
			if input.Email, err = args.String("email"); err != nil {
				return "", err
			}
			if input.Name, err = args.String("name"); err != nil {
				return "", err
			}
			if input.Password, err = args.String("password"); err != nil {
				return "", err
			}
			if len(input.Password) < 8 {
				return "", fmt.Errorf("password must be at least 8 characters")
			}
			if input.Role, err = args.String("role"); err != nil {
				return "", err
			}
			user, err := settings.CreateAdminUser(input)
			if err != nil {
				return "", err
			}
			return renderJSON(user)
		},
	})
}
