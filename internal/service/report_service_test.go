package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/models"
)

func createReportOrder(t *testing.T, env *testEnv, number, email string, total string, createdAt time.Time) *models.Order {
	t.Helper()
	amount, err := decimal.NewFromString(total)
	if err != nil {
		t.Fatalf("parse total failed: %v", err)
	}
	order := &models.Order{
		OrderNumber:   number,
		CustomerEmail: email,
		CustomerName:  "Reporter",
		Status:        "pending",
		PaymentStatus: "pending",
		Subtotal:      models.NewMoneyFromDecimal(amount),
		TotalAmount:   models.NewMoneyFromDecimal(amount),
		CreatedAt:     createdAt,
	}
	if err := env.orders.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestSalesReportBucketsByDayAndMonth(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	jan5 := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	createReportOrder(t, env, "TS-R1", "a@example.com", "10.00", jan5)
	createReportOrder(t, env, "TS-R2", "b@example.com", "15.00", jan5.Add(2*time.Hour))
	createReportOrder(t, env, "TS-R3", "c@example.com", "20.00", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))

	rows, err := svc.GetSalesReport(time.Time{}, time.Time{}, "day")
	if err != nil {
		t.Fatalf("daily report failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("daily buckets want 2 got %d", len(rows))
	}
	if rows[0].Period != "2026-01-05" || rows[0].Orders != 2 || rows[0].Revenue.String() != "25.00" {
		t.Fatalf("unexpected first daily bucket: %+v", rows[0])
	}
	if rows[1].Period != "2026-02-01" || rows[1].Revenue.String() != "20.00" {
		t.Fatalf("unexpected second daily bucket: %+v", rows[1])
	}

	rows, err = svc.GetSalesReport(time.Time{}, time.Time{}, "month")
	if err != nil {
		t.Fatalf("monthly report failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Period != "2026-01" || rows[1].Period != "2026-02" {
		t.Fatalf("unexpected monthly buckets: %+v", rows)
	}

	if _, err := svc.GetSalesReport(time.Time{}, time.Time{}, "fortnight"); err == nil {
		t.Fatalf("unknown grouping must fail")
	}
}

func TestSalesReportHonoursDateRange(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	createReportOrder(t, env, "TS-R1", "a@example.com", "10.00", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	createReportOrder(t, env, "TS-R2", "b@example.com", "20.00", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows, err := svc.GetSalesReport(from, time.Time{}, "")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Revenue.String() != "20.00" {
		t.Fatalf("range filter want only march order, got %+v", rows)
	}
}

func TestRevenueByCategoryFallsBackToUncategorized(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	category := &models.Category{Name: "Jewelry", Slug: "jewelry"}
	if err := env.categories.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	inCategory := createEnvProduct(t, env, "Gold Ring", "gold-ring", "100.00", 10)
	if err := env.products.UpdateFields(inCategory.ID, map[string]interface{}{"category_id": category.ID}); err != nil {
		t.Fatalf("assign category failed: %v", err)
	}
	orphan := createEnvProduct(t, env, "Mystery Box", "mystery-box", "10.00", 10)

	order := createReportOrder(t, env, "TS-R1", "a@example.com", "130.00", time.Now())
	deleted := uint(9999)
	items := []models.OrderItem{
		{OrderID: order.ID, ProductID: &inCategory.ID, ProductName: "Gold Ring", Quantity: 1,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
		{OrderID: order.ID, ProductID: &orphan.ID, ProductName: "Mystery Box", Quantity: 2,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20))},
		{OrderID: order.ID, ProductID: &deleted, ProductName: "Gone", Quantity: 1,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(10))},
	}
	if err := env.orders.CreateItems(items); err != nil {
		t.Fatalf("create items failed: %v", err)
	}

	rows, err := svc.GetRevenueByCategory()
	if err != nil {
		t.Fatalf("revenue by category failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d: %+v", len(rows), rows)
	}
	if rows[0].Category != "Jewelry" || rows[0].Revenue.String() != "100.00" {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[1].Category != "Uncategorized" || rows[1].Items != 3 || rows[1].Revenue.String() != "30.00" {
		t.Fatalf("uncategorized bucket mismatch: %+v", rows[1])
	}
}

func TestInventoryReportPartitionsStock(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	createEnvProduct(t, env, "Healthy", "healthy", "10.00", 50)
	low := createEnvProduct(t, env, "Low", "low", "20.00", 3)
	if err := env.products.UpdateFields(low.ID, map[string]interface{}{"low_stock_threshold": 5}); err != nil {
		t.Fatalf("set threshold failed: %v", err)
	}
	createEnvProduct(t, env, "Empty", "empty", "5.00", 0)

	report, err := svc.GetInventoryReport()
	if err != nil {
		t.Fatalf("inventory report failed: %v", err)
	}
	if report.TotalProducts != 3 || report.TotalStockUnits != 53 {
		t.Fatalf("totals mismatch: %+v", report)
	}
	if report.HealthyCount != 1 || len(report.LowStock) != 1 || len(report.OutOfStock) != 1 {
		t.Fatalf("partition mismatch: healthy=%d low=%d out=%d", report.HealthyCount, len(report.LowStock), len(report.OutOfStock))
	}
	// 估值 10×50 + 20×3 + 5×0 = 560
	if report.StockValuation.String() != "560.00" {
		t.Fatalf("valuation want 560.00 got %s", report.StockValuation.String())
	}
}

func TestDashboardStatsSplitsTodayFromTotal(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	createReportOrder(t, env, "TS-OLD", "a@example.com", "40.00", time.Now().AddDate(0, 0, -7))
	createReportOrder(t, env, "TS-NEW", "b@example.com", "10.00", time.Now())

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("dashboard stats failed: %v", err)
	}
	if stats.TotalOrders != 2 || stats.PendingOrders != 2 {
		t.Fatalf("order counts mismatch: %+v", stats)
	}
	if stats.TotalRevenue.String() != "50.00" {
		t.Fatalf("total revenue want 50.00 got %s", stats.TotalRevenue.String())
	}
	if stats.TodayRevenue.String() != "10.00" || stats.TodayOrders != 1 {
		t.Fatalf("today split mismatch: revenue=%s orders=%d", stats.TodayRevenue.String(), stats.TodayOrders)
	}
}

func TestTopProductsByQuantity(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	big := createEnvProduct(t, env, "Big Seller", "big-seller", "5.00", 100)
	small := createEnvProduct(t, env, "Small Seller", "small-seller", "100.00", 100)

	order := createReportOrder(t, env, "TS-T1", "a@example.com", "150.00", time.Now())
	items := []models.OrderItem{
		{OrderID: order.ID, ProductID: &big.ID, ProductName: "Big Seller", Quantity: 10,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(5)), TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(50))},
		{OrderID: order.ID, ProductID: &small.ID, ProductName: "Small Seller", Quantity: 1,
			UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
	}
	if err := env.orders.CreateItems(items); err != nil {
		t.Fatalf("create items failed: %v", err)
	}

	rows, err := svc.GetTopProducts("quantity", 10)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if rows[0].Name != "Big Seller" || rows[0].Quantity != 10 {
		t.Fatalf("quantity metric mismatch: %+v", rows[0])
	}

	rows, err = svc.GetTopProducts("", 10)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if rows[0].Name != "Small Seller" || rows[0].Revenue.String() != "100.00" {
		t.Fatalf("revenue metric mismatch: %+v", rows[0])
	}

	if _, err := svc.GetTopProducts("charisma", 10); err == nil {
		t.Fatalf("unknown metric must fail")
	}
}

func TestCustomerInsightsRanksBySpend(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewReportService(env.products, env.categories, env.orders, env.customers, env.reviews)

	createReportOrder(t, env, "TS-C1", "whale@example.com", "200.00", time.Now())
	createReportOrder(t, env, "TS-C2", "whale@example.com", "100.00", time.Now())
	createReportOrder(t, env, "TS-C3", "minnow@example.com", "5.00", time.Now())

	rows, err := svc.GetCustomerInsights(0)
	if err != nil {
		t.Fatalf("customer insights failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}
	if rows[0].Email != "whale@example.com" || rows[0].Orders != 2 || rows[0].TotalSpend.String() != "300.00" {
		t.Fatalf("top customer mismatch: %+v", rows[0])
	}
}
