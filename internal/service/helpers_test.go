package service

import (
	"fmt"
	"testing"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	products   *repository.GormProductRepository
	categories *repository.GormCategoryRepository
	orders     *repository.GormOrderRepository
	customers  *repository.GormCustomerRepository
	reviews    *repository.GormReviewRepository
	currencies *repository.GormCurrencyRepository
	pages      *repository.GormPageRepository
	payments   *repository.GormPaymentMethodRepository
	admins     *repository.GormAdminUserRepository
}

func setupServiceTest(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return &testEnv{
		db:         db,
		products:   repository.NewProductRepository(db),
		categories: repository.NewCategoryRepository(db),
		orders:     repository.NewOrderRepository(db),
		customers:  repository.NewCustomerRepository(db),
		reviews:    repository.NewReviewRepository(db),
		currencies: repository.NewCurrencyRepository(db),
		pages:      repository.NewPageRepository(db),
		payments:   repository.NewPaymentMethodRepository(db),
		admins:     repository.NewAdminUserRepository(db),
	}
}

func createEnvProduct(t *testing.T, env *testEnv, name, slug string, price string, stock int) *models.Product {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:          name,
		Slug:          slug,
		BasePrice:     models.NewMoneyFromDecimal(amount),
		StockQuantity: stock,
		IsActive:      true,
	}
	if err := env.products.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
