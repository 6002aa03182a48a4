package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// CreateProductInput 创建商品参数
type CreateProductInput struct {
	Name              string
	Slug              string
	SKU               string
	Description       string
	CategoryID        *uint
	BasePrice         decimal.Decimal
	CompareAtPrice    decimal.Decimal
	StockQuantity     int
	LowStockThreshold *int
	Images            []string
	IsActive          *bool
	IsFeatured        bool
}

// UpdateProductInput 更新商品参数，nil 字段不变
type UpdateProductInput struct {
	Name              *string
	Slug              *string
	SKU               *string
	Description       *string
	CategoryID        *uint
	BasePrice         *decimal.Decimal
	CompareAtPrice    *decimal.Decimal
	StockQuantity     *int
	LowStockThreshold *int
	Images            []string
	IsActive          *bool
	IsFeatured        *bool
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.products.List(filter)
}

// Get 根据 ID 或 slug 获取商品
func (s *ProductService) Get(id uint, slug string) (*models.Product, error) {
	var product *models.Product
	var err error
	if id != 0 {
		product, err = s.products.GetByID(id)
	} else {
		product, err = s.products.GetBySlug(slug)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品，slug 缺省时由名称派生
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}
	count, err := s.products.CountBySlug(slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}

	if input.CategoryID != nil {
		category, err := s.categories.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	product := &models.Product{
		Name:           input.Name,
		Slug:           slug,
		SKU:            input.SKU,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		BasePrice:      models.NewMoneyFromDecimal(input.BasePrice),
		CompareAtPrice: models.NewMoneyFromDecimal(input.CompareAtPrice),
		StockQuantity:  input.StockQuantity,
		Images:         models.StringArray(input.Images),
		IsActive:       true,
		IsFeatured:     input.IsFeatured,
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	} else {
		product.LowStockThreshold = 5
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Slug != nil {
		fields["slug"] = *input.Slug
	}
	if input.SKU != nil {
		fields["sku"] = *input.SKU
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categories.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		fields["category_id"] = *input.CategoryID
	}
	if input.BasePrice != nil {
		fields["base_price"] = models.NewMoneyFromDecimal(*input.BasePrice)
	}
	if input.CompareAtPrice != nil {
		fields["compare_at_price"] = models.NewMoneyFromDecimal(*input.CompareAtPrice)
	}
	if input.StockQuantity != nil {
		quantity := *input.StockQuantity
		if quantity < 0 {
			quantity = 0
		}
		fields["stock_quantity"] = quantity
	}
	if input.LowStockThreshold != nil {
		fields["low_stock_threshold"] = *input.LowStockThreshold
	}
	if input.Images != nil {
		fields["images"] = models.StringArray(input.Images)
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}

	if len(fields) > 0 {
		if err := s.products.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.products.GetByID(id)
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.products.Delete(id)
}

// UpdateStock 设定商品库存绝对值（下限 0）
func (s *ProductService) UpdateStock(id uint, quantity int) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity < 0 {
		quantity = 0
	}
	if err := s.products.UpdateFields(id, map[string]interface{}{"stock_quantity": quantity}); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	return product, nil
}

// BulkUpdateResult 批量更新单条结果
type BulkUpdateResult struct {
	ProductID uint   `json:"product_id"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

// BulkUpdate 对多个商品应用同一组字段更新，逐条收集结果
func (s *ProductService) BulkUpdate(ids []uint, input UpdateProductInput) []BulkUpdateResult {
	results := make([]BulkUpdateResult, 0, len(ids))
	for _, id := range ids {
		if _, err := s.Update(id, input); err != nil {
			results = append(results, BulkUpdateResult{ProductID: id, OK: false, Error: err.Error()})
			continue
		}
		results = append(results, BulkUpdateResult{ProductID: id, OK: true})
	}
	return results
}
