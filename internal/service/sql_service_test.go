package service

import (
	"errors"
	"testing"

	"github.com/siwaht/thriftysouq/internal/repository"
)

func TestValidateReadOnlyRejectsMutations(t *testing.T) {
	cases := []string{
		"DELETE FROM products",
		"update products set stock_quantity = 0",
		"INSERT INTO products (name) VALUES ('x')",
		"DROP TABLE orders",
		"select 1; drop table products",
		"",
	}
	for _, query := range cases {
		if err := ValidateReadOnly(query); !errors.Is(err, ErrQueryNotReadOnly) {
			t.Fatalf("query %q want ErrQueryNotReadOnly got %v", query, err)
		}
	}
}

func TestValidateReadOnlyAcceptsSelect(t *testing.T) {
	cases := []string{
		"SELECT * FROM products",
		"  select count(*) from orders  ",
		"SELECT name FROM products WHERE stock_quantity < 5;",
	}
	for _, query := range cases {
		if err := ValidateReadOnly(query); err != nil {
			t.Fatalf("query %q should pass, got %v", query, err)
		}
	}
}

func TestExecuteRunsSelectAgainstStore(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewSQLService(repository.NewReadOnlyQuerier(env.db))
	createEnvProduct(t, env, "Widget", "widget", "10.00", 5)
	createEnvProduct(t, env, "Gadget", "gadget", "20.00", 7)

	rows, err := svc.Execute("SELECT name FROM products ORDER BY name")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}
	if rows[0]["name"] != "Gadget" {
		t.Fatalf("first row want Gadget got %v", rows[0]["name"])
	}

	if _, err := svc.Execute("DELETE FROM products"); !errors.Is(err, ErrQueryNotReadOnly) {
		t.Fatalf("mutation must be rejected before reaching the store, got %v", err)
	}
}

func TestExecuteWithoutQuerier(t *testing.T) {
	svc := NewSQLService(nil)
	if _, err := svc.Execute("SELECT 1"); !errors.Is(err, ErrRawQueryUnsupported) {
		t.Fatalf("nil querier want ErrRawQueryUnsupported got %v", err)
	}
}
