package repository

import (
	"testing"
)

func TestAdjustStockDecrementsAtomically(t *testing.T) {
	repo, _ := setupQueryTest(t)
	product := createTestProduct(t, repo, "Widget", "widget", 10, 5)

	affected, err := repo.AdjustStock(product.ID, -2)
	if err != nil {
		t.Fatalf("adjust stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 3 {
		t.Fatalf("stock want 3 got %d", got.StockQuantity)
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	repo, _ := setupQueryTest(t)
	product := createTestProduct(t, repo, "Scarce", "scarce", 10, 2)

	if _, err := repo.AdjustStock(product.ID, -9); err != nil {
		t.Fatalf("adjust stock failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.StockQuantity != 0 {
		t.Fatalf("stock want 0 got %d", got.StockQuantity)
	}
}

func TestAdjustStockMissingProduct(t *testing.T) {
	repo, _ := setupQueryTest(t)

	affected, err := repo.AdjustStock(9999, -1)
	if err != nil {
		t.Fatalf("adjust stock failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}
}

func TestCountBySlug(t *testing.T) {
	repo, _ := setupQueryTest(t)
	createTestProduct(t, repo, "Widget", "widget", 10, 5)

	count, err := repo.CountBySlug("widget")
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("missing")
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count want 0 got %d", count)
	}
}

func TestUpdateFieldsLeavesArgumentUntouched(t *testing.T) {
	repo, _ := setupQueryTest(t)
	product := createTestProduct(t, repo, "Widget", "widget", 10, 5)

	fields := map[string]interface{}{"name": "Gadget"}
	if err := repo.UpdateFields(product.ID, fields); err != nil {
		t.Fatalf("update fields failed: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("caller map must stay unchanged, got %v", fields)
	}
	if _, ok := fields["updated_at"]; ok {
		t.Fatalf("caller map must not receive the timestamp")
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Name != "Gadget" {
		t.Fatalf("name want Gadget got %s", got.Name)
	}
	if !got.UpdatedAt.After(product.UpdatedAt) {
		t.Fatalf("updated_at must advance: %v -> %v", product.UpdatedAt, got.UpdatedAt)
	}
}

func TestGetByIDNotFoundReturnsNil(t *testing.T) {
	repo, _ := setupQueryTest(t)

	product, err := repo.GetByID(12345)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product != nil {
		t.Fatalf("missing product want nil got %+v", product)
	}
}
