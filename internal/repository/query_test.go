package repository

import (
	"fmt"
	"testing"

	"github.com/siwaht/thriftysouq/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupQueryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Category{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name, slug string, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Slug:          slug,
		BasePrice:     models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		StockQuantity: stock,
		IsActive:      true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestWindowingReturnsBoundedRange(t *testing.T) {
	repo, _ := setupQueryTest(t)
	for i := 0; i < 5; i++ {
		createTestProduct(t, repo, fmt.Sprintf("Ring %d", i), fmt.Sprintf("ring-%d", i), 10, 10)
	}

	items, total, err := repo.List(ProductListFilter{
		Search: "ring",
		Sort:   SortSpec{Field: "name", Direction: "asc"},
		Window: Window{Limit: 2, Offset: 2},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("window width want 2 got %d", len(items))
	}
	if items[0].Name != "Ring 2" || items[1].Name != "Ring 3" {
		t.Fatalf("window positions want [Ring 2, Ring 3] got [%s, %s]", items[0].Name, items[1].Name)
	}
}

func TestWindowingDefaultsWidthWhenOnlyOffsetGiven(t *testing.T) {
	repo, _ := setupQueryTest(t)
	for i := 0; i < 3; i++ {
		createTestProduct(t, repo, fmt.Sprintf("Item %d", i), fmt.Sprintf("item-%d", i), 5, 1)
	}

	items, _, err := repo.List(ProductListFilter{
		Sort:   SortSpec{Field: "name", Direction: "asc"},
		Window: Window{Offset: 1},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// 只给 offset 时窗口宽度取默认值，不会返回全部剩余行之外的内容
	if len(items) != 2 {
		t.Fatalf("items want 2 got %d", len(items))
	}
	if items[0].Name != "Item 1" {
		t.Fatalf("first item want Item 1 got %s", items[0].Name)
	}
}

func TestWindowingAbsentIsNoOp(t *testing.T) {
	repo, _ := setupQueryTest(t)
	for i := 0; i < 4; i++ {
		createTestProduct(t, repo, fmt.Sprintf("Plain %d", i), fmt.Sprintf("plain-%d", i), 5, 1)
	}

	items, _, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("items want 4 got %d", len(items))
	}
}

func TestSearchIsLiteralSubstring(t *testing.T) {
	repo, _ := setupQueryTest(t)
	createTestProduct(t, repo, "Gold Ring", "gold-ring", 50, 10)
	createTestProduct(t, repo, "Silver Necklace", "silver-necklace", 30, 10)
	createTestProduct(t, repo, "RING holder", "ring-holder", 5, 10)

	items, total, err := repo.List(ProductListFilter{Search: "ring"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("case-insensitive search want 2 got total=%d len=%d", total, len(items))
	}

	// 搜索文本经占位符绑定，引号不会破坏查询
	items, _, err = repo.List(ProductListFilter{Search: "'; DROP TABLE products;--"})
	if err != nil {
		t.Fatalf("list with quoted search failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("quoted search want 0 got %d", len(items))
	}
}

func TestRangeFiltersCompose(t *testing.T) {
	repo, _ := setupQueryTest(t)
	createTestProduct(t, repo, "Cheap", "cheap", 5, 2)
	createTestProduct(t, repo, "Middle", "middle", 50, 20)
	createTestProduct(t, repo, "Expensive", "expensive", 500, 200)

	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(100)
	minStock := 10
	items, _, err := repo.List(ProductListFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		MinStock: &minStock,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Middle" {
		t.Fatalf("range filters want [Middle] got %d items", len(items))
	}
}

func TestSortFieldOutsideWhitelistFallsBack(t *testing.T) {
	repo, _ := setupQueryTest(t)
	createTestProduct(t, repo, "A", "a", 1, 1)
	createTestProduct(t, repo, "B", "b", 2, 2)

	items, _, err := repo.List(ProductListFilter{
		Sort: SortSpec{Field: "password_hash; DROP TABLE products", Direction: "asc"},
	})
	if err != nil {
		t.Fatalf("list with unknown sort field failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items want 2 got %d", len(items))
	}
}
