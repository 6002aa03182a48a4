package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/logger"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// OrderService 订单服务
// 订单与订单项为两次独立写入，库存调整在其后逐项执行；
// 单项库存调整失败只记录并上报，不回滚已落库的订单。
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// OrderItemInput 下单商品项
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput 创建订单参数
type CreateOrderInput struct {
	CustomerEmail   string
	CustomerName    string
	Items           []OrderItemInput
	ShippingAddress models.JSON
	PaymentMethod   string
	Notes           string
}

// CreateOrderResult 创建订单结果，StockWarnings 为逐项库存调整失败信息
type CreateOrderResult struct {
	Order         *models.Order
	StockWarnings []string
}

// CancelOrderResult 取消订单结果
type CancelOrderResult struct {
	Order           *models.Order
	RestoreWarnings []string
}

// GenerateOrderNumber 生成订单编号：前缀 + 纳秒时间戳的大写 36 进制
func GenerateOrderNumber() string {
	return constants.OrderNumberPrefix + strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orders.List(filter)
}

// Get 根据 ID 或编号获取订单（含订单项）
func (s *OrderService) Get(id uint, orderNumber string) (*models.Order, error) {
	var order *models.Order
	var err error
	if id != 0 {
		order, err = s.orders.GetByID(id)
	} else {
		order, err = s.orders.GetByNumber(orderNumber)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Create 创建订单。
// 商品解析或定价失败在任何写入前中止；定价取商品当前售价，
// 不信任调用方传入的价格。
func (s *OrderService) Create(input CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidOrderItem, item.ProductID)
		}
	}

	ids := make([]uint, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, item.ProductID)
		}
		unitPrice := product.BasePrice.Decimal
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		productID := product.ID
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			SKU:         product.SKU,
			UnitPrice:   models.NewMoneyFromDecimal(unitPrice),
			Quantity:    item.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
		})
	}

	notes := input.Notes
	if notes != "" {
		notes = appendNote("", notes)
	}
	order := &models.Order{
		OrderNumber:     GenerateOrderNumber(),
		CustomerEmail:   input.CustomerEmail,
		CustomerName:    input.CustomerName,
		Status:          constants.OrderStatusPending,
		PaymentStatus:   constants.PaymentStatusPending,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		TotalAmount:     models.NewMoneyFromDecimal(subtotal),
		ShippingAddress: input.ShippingAddress,
		Notes:           notes,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}
	if err := s.orders.CreateItems(orderItems); err != nil {
		return nil, err
	}
	order.Items = orderItems

	var warnings []string
	for _, item := range orderItems {
		if err := s.adjustStock(*item.ProductID, -item.Quantity); err != nil {
			warning := fmt.Sprintf("stock decrement failed for product %d: %v", *item.ProductID, err)
			warnings = append(warnings, warning)
			logger.Warnw("order stock decrement failed",
				"order_number", order.OrderNumber,
				"product_id", *item.ProductID,
				"quantity", item.Quantity,
				"error", err,
			)
		}
	}

	logger.Infow("order created",
		"order_number", order.OrderNumber,
		"customer_email", order.CustomerEmail,
		"total_amount", order.TotalAmount.String(),
		"items", len(orderItems),
	)
	return &CreateOrderResult{Order: order, StockWarnings: warnings}, nil
}

// Cancel 取消订单。
// 库存恢复与状态变更相互独立：恢复失败只上报，不阻止取消。
func (s *OrderService) Cancel(id uint, restock bool, reason string) (*CancelOrderResult, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusCancelled || order.Status == constants.OrderStatusDelivered {
		return nil, fmt.Errorf("%w: %s", ErrOrderTerminal, order.Status)
	}

	var warnings []string
	if restock {
		items, err := s.orders.ListItems(order.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.ProductID == nil {
				continue
			}
			if err := s.adjustStock(*item.ProductID, item.Quantity); err != nil {
				warning := fmt.Sprintf("stock restore failed for product %d: %v", *item.ProductID, err)
				warnings = append(warnings, warning)
				logger.Warnw("order stock restore failed",
					"order_number", order.OrderNumber,
					"product_id", *item.ProductID,
					"quantity", item.Quantity,
					"error", err,
				)
			}
		}
	}

	entry := "Order cancelled"
	if reason != "" {
		entry += ": " + reason
	}
	notes := appendNote(order.Notes, entry)
	if err := s.orders.UpdateFields(order.ID, map[string]interface{}{
		"status": constants.OrderStatusCancelled,
		"notes":  notes,
	}); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCancelled
	order.Notes = notes

	logger.Infow("order cancelled",
		"order_number", order.OrderNumber,
		"restock", restock,
		"warnings", len(warnings),
	)
	return &CancelOrderResult{Order: order, RestoreWarnings: warnings}, nil
}

// UpdateStatus 更新订单状态。已取消订单不再变更。
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !containsString(constants.OrderStatuses, status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: %s", ErrOrderTerminal, order.Status)
	}
	if err := s.orders.UpdateFields(order.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// UpdatePaymentStatus 更新支付状态。与订单状态互不约束。
func (s *OrderService) UpdatePaymentStatus(id uint, paymentStatus string) (*models.Order, error) {
	if !containsString(constants.PaymentStatuses, paymentStatus) {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orders.UpdateFields(order.ID, map[string]interface{}{"payment_status": paymentStatus}); err != nil {
		return nil, err
	}
	order.PaymentStatus = paymentStatus
	return order, nil
}

// AddNote 追加订单备注，保留既有内容
func (s *OrderService) AddNote(id uint, note string) (*models.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	notes := appendNote(order.Notes, note)
	if err := s.orders.UpdateFields(order.ID, map[string]interface{}{"notes": notes}); err != nil {
		return nil, err
	}
	order.Notes = notes
	return order, nil
}

// Delete 删除订单及其订单项
func (s *OrderService) Delete(id uint) error {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orders.Delete(id)
}

// adjustStock 调整商品库存。
// 优先使用存储层的原子调整；不可用时退化为读改写（下限 0），
// 该路径在并发写同一商品时可能丢失更新。
func (s *OrderService) adjustStock(productID uint, delta int) error {
	if adjuster, ok := s.products.(repository.StockAdjuster); ok {
		affected, err := adjuster.AdjustStock(productID, delta)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrProductNotFound
		}
		return nil
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	next := product.StockQuantity + delta
	if next < 0 {
		next = 0
	}
	return s.products.UpdateFields(productID, map[string]interface{}{"stock_quantity": next})
}

// appendNote 追加一条带时间戳的备注，既有内容以空行分隔保留
func appendNote(existing, entry string) string {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04:05"), entry)
	if existing == "" {
		return line
	}
	return existing + "\n\n" + line
}
