package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateProductDerivesSlug(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewProductService(env.products, env.categories)

	product, err := svc.Create(CreateProductInput{
		Name:      "Gold Ring",
		BasePrice: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Slug != "gold-ring" {
		t.Fatalf("slug want gold-ring got %s", product.Slug)
	}
	if product.LowStockThreshold != 5 {
		t.Fatalf("threshold default want 5 got %d", product.LowStockThreshold)
	}
	if !product.IsActive {
		t.Fatalf("new product should be active by default")
	}
}

func TestCreateProductRejectsDuplicateSlug(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewProductService(env.products, env.categories)

	if _, err := svc.Create(CreateProductInput{Name: "Gold Ring", BasePrice: decimal.NewFromInt(50)}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	_, err := svc.Create(CreateProductInput{Name: "Silver Ring", Slug: "gold-ring", BasePrice: decimal.NewFromInt(30)})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("duplicate slug want ErrSlugTaken got %v", err)
	}
}

func TestCreateProductUnknownCategoryRejected(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewProductService(env.products, env.categories)

	missing := uint(9999)
	_, err := svc.Create(CreateProductInput{Name: "Orphan", BasePrice: decimal.NewFromInt(10), CategoryID: &missing})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("unknown category want ErrCategoryNotFound got %v", err)
	}
}

func TestUpdateStockFloorsAtZero(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewProductService(env.products, env.categories)
	product := createEnvProduct(t, env, "Widget", "widget", "10.00", 5)

	updated, err := svc.UpdateStock(product.ID, -3)
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if updated.StockQuantity != 0 {
		t.Fatalf("stock want 0 got %d", updated.StockQuantity)
	}
}
