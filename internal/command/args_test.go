package command

import (
	"testing"
	"time"
)

func TestArgsNumericCoercion(t *testing.T) {
	args := Args{"id": float64(42), "delta": -3}

	id, err := args.Uint("id")
	if err != nil {
		t.Fatalf("uint failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("id want 42 got %d", id)
	}

	if _, err := args.Uint("delta"); err == nil {
		t.Fatalf("negative value must fail uint conversion")
	}
	delta, err := args.Int("delta")
	if err != nil {
		t.Fatalf("int failed: %v", err)
	}
	if delta != -3 {
		t.Fatalf("delta want -3 got %d", delta)
	}
}

func TestArgsDecimalAcceptsStringAndNumber(t *testing.T) {
	args := Args{"price_a": "19.99", "price_b": float64(5), "price_c": "not-a-number"}

	a, err := args.Decimal("price_a")
	if err != nil {
		t.Fatalf("decimal from string failed: %v", err)
	}
	if a.StringFixed(2) != "19.99" {
		t.Fatalf("price_a want 19.99 got %s", a.StringFixed(2))
	}

	b, err := args.Decimal("price_b")
	if err != nil {
		t.Fatalf("decimal from number failed: %v", err)
	}
	if !b.Equal(b.Truncate(0)) {
		t.Fatalf("price_b should be integral, got %s", b.String())
	}

	if _, err := args.Decimal("price_c"); err == nil {
		t.Fatalf("malformed decimal must fail")
	}
}

func TestArgsTimeFormats(t *testing.T) {
	args := Args{"from": "2026-08-01", "to": "2026-08-29T10:30:00Z", "bad": "yesterday"}

	from, err := args.Time("from")
	if err != nil {
		t.Fatalf("date-only parse failed: %v", err)
	}
	if from.Day() != 1 {
		t.Fatalf("from day want 1 got %d", from.Day())
	}

	to, err := args.Time("to")
	if err != nil {
		t.Fatalf("rfc3339 parse failed: %v", err)
	}
	if !to.Equal(time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected to: %v", to)
	}

	if _, err := args.Time("bad"); err == nil {
		t.Fatalf("malformed time must fail")
	}
}

func TestArgsUintSlice(t *testing.T) {
	args := Args{"ids": []interface{}{float64(1), float64(2), float64(3)}}

	ids, err := args.UintSlice("ids")
	if err != nil {
		t.Fatalf("uint slice failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestArgsOptionalGettersReturnNilWhenAbsent(t *testing.T) {
	args := Args{}

	if ptr, err := args.BoolPtr("missing"); err != nil || ptr != nil {
		t.Fatalf("absent bool want nil got %v (err %v)", ptr, err)
	}
	if ptr, err := args.IntPtr("missing"); err != nil || ptr != nil {
		t.Fatalf("absent int want nil got %v (err %v)", ptr, err)
	}
	if ptr, err := args.StringPtr("missing"); err != nil || ptr != nil {
		t.Fatalf("absent string want nil got %v (err %v)", ptr, err)
	}
}
