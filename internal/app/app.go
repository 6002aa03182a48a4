package app

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/siwaht/thriftysouq/internal/command"
	"github.com/siwaht/thriftysouq/internal/config"
	"github.com/siwaht/thriftysouq/internal/logger"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
	"github.com/siwaht/thriftysouq/internal/service"
	"gorm.io/gorm"
)

// App 应用装配：logger → db → 仓库 → 服务 → 命令注册表
type App struct {
	cfg      *config.Config
	db       *gorm.DB
	registry *command.Registry
	seed     *service.SeedService
}

// New 构建应用及其全部依赖
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	footerRepo := repository.NewFooterRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)
	pageRepo := repository.NewPageRepository(db)
	querier := repository.NewReadOnlyQuerier(db)

	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	customerService := service.NewCustomerService(customerRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	couponService := service.NewCouponService(couponRepo)
	currencyService := service.NewCurrencyService(currencyRepo)
	pageService := service.NewPageService(pageRepo)
	settingsService := service.NewSettingsService(settingRepo, footerRepo, paymentMethodRepo, adminUserRepo)
	reportService := service.NewReportService(productRepo, categoryRepo, orderRepo, customerRepo, reviewRepo)
	sqlService := service.NewSQLService(querier)
	seedService := service.NewSeedService(categoryRepo, productRepo, currencyRepo, pageRepo, paymentMethodRepo, adminUserRepo)

	registry := command.NewRegistry()
	command.RegisterProductCommands(registry, productService)
	command.RegisterCategoryCommands(registry, categoryService)
	command.RegisterOrderCommands(registry, orderService)
	command.RegisterCustomerCommands(registry, customerService)
	command.RegisterReviewCommands(registry, reviewService)
	command.RegisterCouponCommands(registry, couponService)
	command.RegisterCurrencyCommands(registry, currencyService)
	command.RegisterSettingsCommands(registry, settingsService)
	command.RegisterPageCommands(registry, pageService)
	command.RegisterReportCommands(registry, reportService)
	command.RegisterSQLCommands(registry, sqlService)
	command.RegisterSeedCommands(registry, seedService, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)

	return &App{cfg: cfg, db: db, registry: registry, seed: seedService}, nil
}

// Registry 返回命令注册表
func (a *App) Registry() *command.Registry {
	return a.registry
}

// Seed 执行参考数据播种
func (a *App) Seed() (*service.SeedReport, error) {
	return a.seed.Run(a.cfg.Seed.AdminEmail, a.cfg.Seed.AdminPassword)
}

// Run 以 MCP stdio 传输对外提供命令目录，直至 ctx 取消
func (a *App) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    a.cfg.Server.Name,
		Version: a.cfg.Server.Version,
	}, nil)

	for _, spec := range a.registry.Specs() {
		tool := &mcp.Tool{Name: spec.Name, Description: spec.Description}
		mcp.AddTool(server, tool, a.toolHandler(spec.Name))
	}

	logger.Infow("server starting",
		"name", a.cfg.Server.Name,
		"version", a.cfg.Server.Version,
		"commands", len(a.registry.Specs()),
	)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// toolHandler 将一条注册表命令适配为 MCP 工具处理函数
func (a *App) toolHandler(name string) mcp.ToolHandlerFor[map[string]any, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
		result := a.registry.Dispatch(ctx, name, command.Args(input))
		return &mcp.CallToolResult{
			IsError: result.IsError,
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
		}, nil, nil
	}
}
