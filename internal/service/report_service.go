package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// ReportService 报表服务。
// 全部指标为内存归并，数据经列表读取后在进程内聚合，
// 仅适用于小规模数据集。
type ReportService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	orders     repository.OrderRepository
	customers  repository.CustomerRepository
	reviews    repository.ReviewRepository
}

// NewReportService 创建报表服务
func NewReportService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	reviews repository.ReviewRepository,
) *ReportService {
	return &ReportService{
		products:   products,
		categories: categories,
		orders:     orders,
		customers:  customers,
		reviews:    reviews,
	}
}

// DashboardStats 仪表盘统计
type DashboardStats struct {
	TotalProducts   int          `json:"total_products"`
	ActiveProducts  int          `json:"active_products"`
	TotalOrders     int          `json:"total_orders"`
	PendingOrders   int          `json:"pending_orders"`
	TotalCustomers  int64        `json:"total_customers"`
	PendingReviews  int64        `json:"pending_reviews"`
	TotalRevenue    models.Money `json:"total_revenue"`
	TodayRevenue    models.Money `json:"today_revenue"`
	TodayOrders     int          `json:"today_orders"`
	LowStockCount   int          `json:"low_stock_count"`
	OutOfStockCount int          `json:"out_of_stock_count"`
	AverageRating   float64      `json:"average_rating"`
}

// GetDashboardStats 仪表盘统计。今日口径按本地零点划分。
func (s *ReportService) GetDashboardStats() (*DashboardStats, error) {
	products, _, err := s.products.List(repository.ProductListFilter{})
	if err != nil {
		return nil, err
	}
	orders, _, err := s.orders.List(repository.OrderListFilter{})
	if err != nil {
		return nil, err
	}
	_, totalCustomers, err := s.customers.List(repository.CustomerListFilter{Window: repository.Window{Limit: 1}})
	if err != nil {
		return nil, err
	}
	_, pendingReviews, err := s.reviews.List(repository.ReviewListFilter{
		Status: constants.ReviewStatusPending,
		Window: repository.Window{Limit: 1},
	})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		TotalCustomers: totalCustomers,
		PendingReviews: pendingReviews,
	}

	ratingSum := 0.0
	for _, product := range products {
		if product.IsActive {
			stats.ActiveProducts++
		}
		if product.StockQuantity == 0 {
			stats.OutOfStockCount++
		} else if product.IsLowStock() {
			stats.LowStockCount++
		}
		ratingSum += product.AverageRating
	}
	if len(products) > 0 {
		stats.AverageRating = ratingSum / float64(len(products))
	}

	midnight := localMidnight(time.Now())
	total := decimal.Zero
	today := decimal.Zero
	for _, order := range orders {
		if order.Status == constants.OrderStatusPending {
			stats.PendingOrders++
		}
		total = total.Add(order.TotalAmount.Decimal)
		if !order.CreatedAt.Before(midnight) {
			today = today.Add(order.TotalAmount.Decimal)
			stats.TodayOrders++
		}
	}
	stats.TotalRevenue = models.NewMoneyFromDecimal(total)
	stats.TodayRevenue = models.NewMoneyFromDecimal(today)
	return stats, nil
}

// SalesReportRow 销售报表单桶
type SalesReportRow struct {
	Period  string       `json:"period"`
	Orders  int          `json:"orders"`
	Revenue models.Money `json:"revenue"`
}

// GetSalesReport 销售报表，按 day/week/month 分桶
func (s *ReportService) GetSalesReport(from, to time.Time, groupBy string) ([]SalesReportRow, error) {
	if groupBy == "" {
		groupBy = constants.ReportGroupDay
	}
	if !containsString(constants.ReportGroups, groupBy) {
		return nil, fmt.Errorf("invalid report grouping: %s", groupBy)
	}

	filter := repository.OrderListFilter{}
	if !from.IsZero() {
		filter.CreatedFrom = &from
	}
	if !to.IsZero() {
		filter.CreatedTo = &to
	}
	orders, _, err := s.orders.List(filter)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		orders  int
		revenue decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, order := range orders {
		key := bucketKey(order.CreatedAt, groupBy)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[key] = b
		}
		b.orders++
		b.revenue = b.revenue.Add(order.TotalAmount.Decimal)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]SalesReportRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, SalesReportRow{
			Period:  key,
			Orders:  buckets[key].orders,
			Revenue: models.NewMoneyFromDecimal(buckets[key].revenue),
		})
	}
	return rows, nil
}

// TopProductRow 商品排行单行
type TopProductRow struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity_sold"`
	Revenue   models.Money `json:"revenue"`
	Rating    float64      `json:"rating"`
}

// GetTopProducts 商品排行，metric ∈ {revenue, quantity, rating}
func (s *ReportService) GetTopProducts(metric string, limit int) ([]TopProductRow, error) {
	switch metric {
	case "":
		metric = constants.TopProductsByRevenue
	case constants.TopProductsByRevenue, constants.TopProductsByQuantity, constants.TopProductsByRating:
	default:
		return nil, fmt.Errorf("invalid top products metric: %s", metric)
	}
	if limit <= 0 {
		limit = 10
	}

	products, _, err := s.products.List(repository.ProductListFilter{})
	if err != nil {
		return nil, err
	}
	items, err := s.orders.ListAllItems()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*TopProductRow, len(products))
	rows := make([]*TopProductRow, 0, len(products))
	for _, product := range products {
		row := &TopProductRow{
			ProductID: product.ID,
			Name:      product.Name,
			Revenue:   models.NewMoneyFromDecimal(decimal.Zero),
			Rating:    product.AverageRating,
		}
		byID[product.ID] = row
		rows = append(rows, row)
	}
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		row, ok := byID[*item.ProductID]
		if !ok {
			continue
		}
		row.Quantity += item.Quantity
		row.Revenue = models.NewMoneyFromDecimal(row.Revenue.Decimal.Add(item.TotalPrice.Decimal))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch metric {
		case constants.TopProductsByQuantity:
			return rows[i].Quantity > rows[j].Quantity
		case constants.TopProductsByRating:
			return rows[i].Rating > rows[j].Rating
		default:
			return rows[i].Revenue.Decimal.GreaterThan(rows[j].Revenue.Decimal)
		}
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	result := make([]TopProductRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	return result, nil
}

// CategoryRevenueRow 分类营收单行
type CategoryRevenueRow struct {
	Category string       `json:"category"`
	Items    int          `json:"items_sold"`
	Revenue  models.Money `json:"revenue"`
}

// GetRevenueByCategory 分类营收。
// order_items → products → categories 的关联在内存中完成，
// 无法解析分类的销量计入 Uncategorized。
func (s *ReportService) GetRevenueByCategory() ([]CategoryRevenueRow, error) {
	items, err := s.orders.ListAllItems()
	if err != nil {
		return nil, err
	}
	products, _, err := s.products.List(repository.ProductListFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}
	productCategory := make(map[uint]*uint, len(products))
	for i := range products {
		productCategory[products[i].ID] = products[i].CategoryID
	}

	type bucket struct {
		items   int
		revenue decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, item := range items {
		name := "Uncategorized"
		if item.ProductID != nil {
			if categoryID, ok := productCategory[*item.ProductID]; ok && categoryID != nil {
				if categoryName, ok := categoryNames[*categoryID]; ok {
					name = categoryName
				}
			}
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[name] = b
		}
		b.items += item.Quantity
		b.revenue = b.revenue.Add(item.TotalPrice.Decimal)
	}

	rows := make([]CategoryRevenueRow, 0, len(buckets))
	for name, b := range buckets {
		rows = append(rows, CategoryRevenueRow{
			Category: name,
			Items:    b.items,
			Revenue:  models.NewMoneyFromDecimal(b.revenue),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.Decimal.GreaterThan(rows[j].Revenue.Decimal)
	})
	return rows, nil
}

// CustomerInsightRow 客户消费单行
type CustomerInsightRow struct {
	Email      string       `json:"email"`
	Name       string       `json:"name"`
	Orders     int          `json:"orders"`
	TotalSpend models.Money `json:"total_spend"`
}

// GetCustomerInsights 客户消费排行，按消费额降序
func (s *ReportService) GetCustomerInsights(limit int) ([]CustomerInsightRow, error) {
	if limit <= 0 {
		limit = 10
	}
	orders, _, err := s.orders.List(repository.OrderListFilter{})
	if err != nil {
		return nil, err
	}

	byEmail := map[string]*CustomerInsightRow{}
	ordered := make([]*CustomerInsightRow, 0)
	for _, order := range orders {
		row, ok := byEmail[order.CustomerEmail]
		if !ok {
			row = &CustomerInsightRow{
				Email:      order.CustomerEmail,
				Name:       order.CustomerName,
				TotalSpend: models.NewMoneyFromDecimal(decimal.Zero),
			}
			byEmail[order.CustomerEmail] = row
			ordered = append(ordered, row)
		}
		row.Orders++
		row.TotalSpend = models.NewMoneyFromDecimal(row.TotalSpend.Decimal.Add(order.TotalAmount.Decimal))
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalSpend.Decimal.GreaterThan(ordered[j].TotalSpend.Decimal)
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	rows := make([]CustomerInsightRow, 0, len(ordered))
	for _, row := range ordered {
		rows = append(rows, *row)
	}
	return rows, nil
}

// InventoryItem 库存报表单品
type InventoryItem struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	StockQuantity int    `json:"stock_quantity"`
	Threshold     int    `json:"low_stock_threshold"`
}

// InventoryReport 库存报表
type InventoryReport struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockUnits int             `json:"total_stock_units"`
	StockValuation  models.Money    `json:"stock_valuation"`
	HealthyCount    int             `json:"healthy_count"`
	LowStock        []InventoryItem `json:"low_stock"`
	OutOfStock      []InventoryItem `json:"out_of_stock"`
}

// GetInventoryReport 库存报表。估值为 Σ 售价×库存。
func (s *ReportService) GetInventoryReport() (*InventoryReport, error) {
	products, _, err := s.products.List(repository.ProductListFilter{})
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		TotalProducts: len(products),
		LowStock:      []InventoryItem{},
		OutOfStock:    []InventoryItem{},
	}
	valuation := decimal.Zero
	for _, product := range products {
		report.TotalStockUnits += product.StockQuantity
		valuation = valuation.Add(product.BasePrice.Decimal.Mul(decimal.NewFromInt(int64(product.StockQuantity))))

		item := InventoryItem{
			ProductID:     product.ID,
			Name:          product.Name,
			SKU:           product.SKU,
			StockQuantity: product.StockQuantity,
			Threshold:     product.LowStockThreshold,
		}
		switch {
		case product.StockQuantity == 0:
			report.OutOfStock = append(report.OutOfStock, item)
		case product.IsLowStock():
			report.LowStock = append(report.LowStock, item)
		default:
			report.HealthyCount++
		}
	}
	report.StockValuation = models.NewMoneyFromDecimal(valuation)
	return report, nil
}

// localMidnight 本地时区当日零点
func localMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// bucketKey 报表分桶键
func bucketKey(t time.Time, groupBy string) string {
	switch groupBy {
	case constants.ReportGroupWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case constants.ReportGroupMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
