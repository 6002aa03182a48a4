package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/models"
)

func TestCreateOrderTotalsAndStockDecrement(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	result, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(result.StockWarnings) != 0 {
		t.Fatalf("unexpected stock warnings: %v", result.StockWarnings)
	}

	order := result.Order
	if order.TotalAmount.String() != "20.00" {
		t.Fatalf("total want 20.00 got %s", order.TotalAmount.String())
	}
	if order.Subtotal.String() != "20.00" {
		t.Fatalf("subtotal want 20.00 got %s", order.Subtotal.String())
	}
	if !strings.HasPrefix(order.OrderNumber, constants.OrderNumberPrefix) {
		t.Fatalf("order number want %s prefix got %s", constants.OrderNumberPrefix, order.OrderNumber)
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("new order axes want pending/pending got %s/%s", order.Status, order.PaymentStatus)
	}
	if len(order.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(order.Items))
	}
	if order.Items[0].UnitPrice.String() != "10.00" || order.Items[0].ProductName != "Widget" {
		t.Fatalf("item snapshot mismatch: %+v", order.Items[0])
	}

	got, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 3 {
		t.Fatalf("stock want 3 got %d", got.StockQuantity)
	}
}

func TestCreateOrderUnresolvableProductAborts(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	_, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want product not found, got %v", err)
	}

	var count int64
	if err := env.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order row may exist after abort, got %d", count)
	}
	got, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 5 {
		t.Fatalf("stock must be untouched, want 5 got %d", got.StockQuantity)
	}
}

func TestCreateOrderRejectsEmptyAndInvalidItems(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	if _, err := orders.Create(CreateOrderInput{CustomerEmail: "a@b.c", CustomerName: "A"}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("empty order want ErrEmptyOrder got %v", err)
	}
	_, err := orders.Create(CreateOrderInput{
		CustomerEmail: "a@b.c",
		CustomerName:  "A",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("zero quantity want ErrInvalidOrderItem got %v", err)
	}
}

func TestCancelOrderRestoresStockAndAppendsNote(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	created, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		Notes:         "please gift wrap",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	result, err := orders.Cancel(created.Order.ID, true, "customer changed mind")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if len(result.RestoreWarnings) != 0 {
		t.Fatalf("unexpected restore warnings: %v", result.RestoreWarnings)
	}
	if result.Order.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", result.Order.Status)
	}
	if !strings.Contains(result.Order.Notes, "please gift wrap") {
		t.Fatalf("prior notes must survive, got: %s", result.Order.Notes)
	}
	if !strings.Contains(result.Order.Notes, "Order cancelled: customer changed mind") {
		t.Fatalf("cancellation entry missing, got: %s", result.Order.Notes)
	}

	got, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 5 {
		t.Fatalf("restored stock want 5 got %d", got.StockQuantity)
	}

	// 已取消订单为终态
	if _, err := orders.UpdateStatus(created.Order.ID, constants.OrderStatusShipped); !errors.Is(err, ErrOrderTerminal) {
		t.Fatalf("status update on cancelled order want ErrOrderTerminal got %v", err)
	}
	if _, err := orders.Cancel(created.Order.ID, false, ""); !errors.Is(err, ErrOrderTerminal) {
		t.Fatalf("double cancel want ErrOrderTerminal got %v", err)
	}
}

func TestCancelWithoutRestockLeavesStock(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	created, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := orders.Cancel(created.Order.ID, false, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	got, err := env.products.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 3 {
		t.Fatalf("stock want 3 (no restock) got %d", got.StockQuantity)
	}
}

func TestNoteAppendIsMonotonic(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	created, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	first, err := orders.AddNote(created.Order.ID, "first note")
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	second, err := orders.AddNote(created.Order.ID, "second note")
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}

	if len(second.Notes) <= len(first.Notes) {
		t.Fatalf("notes length must grow: %d -> %d", len(first.Notes), len(second.Notes))
	}
	if !strings.HasPrefix(second.Notes, first.Notes) {
		t.Fatalf("prior notes must remain a prefix")
	}
	if !strings.Contains(second.Notes, "second note") {
		t.Fatalf("new entry missing: %s", second.Notes)
	}
}

func TestStatusAndPaymentAxesAreIndependent(t *testing.T) {
	env := setupServiceTest(t)
	orders := NewOrderService(env.orders, env.products)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	created, err := orders.Create(CreateOrderInput{
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 未支付即可发货，两轴互不约束
	order, err := orders.UpdateStatus(created.Order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if order.Status != constants.OrderStatusDelivered {
		t.Fatalf("status want delivered got %s", order.Status)
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("payment axis must be untouched, got %s", order.PaymentStatus)
	}

	order, err = orders.UpdatePaymentStatus(created.Order.ID, constants.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("payment update failed: %v", err)
	}
	if order.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status want paid got %s", order.PaymentStatus)
	}

	if _, err := orders.UpdateStatus(created.Order.ID, "teleported"); err == nil {
		t.Fatalf("out-of-domain status must fail")
	}
}
