package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterReportCommands 注册报表命令
func RegisterReportCommands(r *Registry, reports *service.ReportService) {
	r.Register(Spec{
		Name:        "get_dashboard_stats",
		Description: "Dashboard statistics: entity counts, today vs all-time revenue, low stock and average rating.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			stats, err := reports.GetDashboardStats()
			if err != nil {
				return "", err
			}
			return renderJSON(stats)
		},
	})

	r.Register(Spec{
		Name:        "get_sales_report",
		Description: "Sales report over an optional date window, bucketed by day, week or month.",
		Enums: map[string][]string{
			"group_by": constants.ReportGroups,
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			from, err := args.Time("from")
			if err != nil {
				return "", err
			}
			to, err := args.Time("to")
			if err != nil {
				return "", err
			}
			groupBy, err := args.String("group_by")
			if err != nil {
				return "", err
			}
			rows, err := reports.GetSalesReport(from, to, groupBy)
			if err != nil {
				return "", err
			}
			return renderJSON(rows)
		},
	})

	r.Register(Spec{
		Name:        "get_top_products",
		Description: "Top products ranked by revenue, quantity sold or rating.",
		Enums: map[string][]string{
			"metric": {constants.TopProductsByRevenue, constants.TopProductsByQuantity, constants.TopProductsByRating},
		},
		Handler: func(ctx context.Context, args Args) (string, error) {
			metric, err := args.String("metric")
			if err != nil {
				return "", err
			}
			limit, err := args.Int("limit")
			if err != nil {
				return "", err
			}
			rows, err := reports.GetTopProducts(metric, limit)
			if err != nil {
				return "", err
			}
			return renderJSON(rows)
		},
	})

	r.Register(Spec{
		Name:        "get_revenue_by_category",
		Description: "Revenue totals per category; items without a resolvable category fall under Uncategorized.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			rows, err := reports.GetRevenueByCategory()
			if err != nil {
				return "", err
			}
			return renderJSON(rows)
		},
	})

	r.Register(Spec{
		Name:        "get_customer_insights",
		Description: "Customers ranked by total spend.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			limit, err := args.Int("limit")
			if err != nil {
				return "", err
			}
			rows, err := reports.GetCustomerInsights(limit)
			if err != nil {
				return "", err
			}
			return renderJSON(rows)
		},
	})

	r.Register(Spec{
		Name:        "get_inventory_report",
		Description: "Inventory valuation and out-of-stock / low-stock / healthy partitions.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			report, err := reports.GetInventoryReport()
			if err != nil {
				return "", err
			}
			return renderJSON(report)
		},
	})
}
