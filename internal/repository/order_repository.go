package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// orderSortColumns 订单排序白名单
var orderSortColumns = map[string]string{
	"created_at":   "created_at",
	"total_amount": "total_amount",
	"status":       "status",
}

// OrderRepository 订单数据访问接口。
// 订单行与订单项分两步写入：底层存储不提供跨表事务，
// 失败补偿由订单引擎负责（见 service.OrderService）。
type OrderRepository interface {
	List(filter OrderListFilter) ([]models.Order, int64, error)
	GetByID(id uint) (*models.Order, error)
	GetByNumber(orderNumber string) (*models.Order, error)
	Create(order *models.Order) error
	CreateItems(items []models.OrderItem) error
	ListItems(orderID uint) ([]models.OrderItem, error)
	ListAllItems() ([]models.OrderItem, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// List 订单列表
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	query = applySearch(query, filter.Search, "order_number", "customer_email", "customer_name")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.CustomerEmail != "" {
		query = query.Where("customer_email = ?", filter.CustomerEmail)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}
	if filter.MinTotal != nil {
		query = query.Where("total_amount >= ?", *filter.MinTotal)
	}
	if filter.MaxTotal != nil {
		query = query.Where("total_amount <= ?", *filter.MaxTotal)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filter.Sort, orderSortColumns, "created_at DESC")
	query = applyWindow(query, filter.Window)

	var orders []models.Order
	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByID 根据 ID 获取订单（含订单项）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByNumber 根据订单编号获取订单（含订单项）
func (r *GormOrderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create 插入订单行
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Omit("Items").Create(order).Error
}

// CreateItems 插入订单项
func (r *GormOrderRepository) CreateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// ListItems 获取某订单的订单项
func (r *GormOrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAllItems 获取全部订单项（报表用，小数据规模前提）
func (r *GormOrderRepository) ListAllItems() ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFields 按字段更新订单
func (r *GormOrderRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// Delete 删除订单（订单项由存储级联清理）
func (r *GormOrderRepository) Delete(id uint) error {
	if err := r.db.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Order{}, id).Error
}
