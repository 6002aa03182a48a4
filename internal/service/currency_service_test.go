package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func defaultCount(t *testing.T, svc *CurrencyService) int {
	t.Helper()
	currencies, err := svc.List()
	if err != nil {
		t.Fatalf("list currencies failed: %v", err)
	}
	count := 0
	for _, currency := range currencies {
		if currency.IsDefault {
			count++
		}
	}
	return count
}

func TestCurrencyDefaultExclusivity(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewCurrencyService(env.currencies)

	usd, err := svc.Create(CreateCurrencyInput{Code: "usd", Name: "US Dollar", Symbol: "$", IsDefault: true})
	if err != nil {
		t.Fatalf("create usd failed: %v", err)
	}
	if usd.Code != "USD" {
		t.Fatalf("code must be uppercased, got %s", usd.Code)
	}
	if usd.ExchangeRate.String() != "1" {
		t.Fatalf("zero rate defaults to 1, got %s", usd.ExchangeRate.String())
	}

	rate := decimal.NewFromFloat(0.92)
	eur, err := svc.Create(CreateCurrencyInput{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: rate, IsDefault: true})
	if err != nil {
		t.Fatalf("create eur failed: %v", err)
	}

	if got := defaultCount(t, svc); got != 1 {
		t.Fatalf("default count want 1 got %d", got)
	}
	refreshed, err := env.currencies.GetByID(usd.ID)
	if err != nil {
		t.Fatalf("get usd failed: %v", err)
	}
	if refreshed.IsDefault {
		t.Fatalf("usd must lose default flag after eur takes it")
	}

	// 再把默认标记切回 usd
	flag := true
	if _, err := svc.Update(usd.ID, UpdateCurrencyInput{IsDefault: &flag}); err != nil {
		t.Fatalf("update usd failed: %v", err)
	}
	if got := defaultCount(t, svc); got != 1 {
		t.Fatalf("default count after switch want 1 got %d", got)
	}
	refreshed, err = env.currencies.GetByID(eur.ID)
	if err != nil {
		t.Fatalf("get eur failed: %v", err)
	}
	if refreshed.IsDefault {
		t.Fatalf("eur must lose default flag after switch back")
	}
}

func TestCurrencyDeleteDefaultRejected(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewCurrencyService(env.currencies)

	usd, err := svc.Create(CreateCurrencyInput{Code: "USD", Name: "US Dollar", IsDefault: true})
	if err != nil {
		t.Fatalf("create usd failed: %v", err)
	}
	aed, err := svc.Create(CreateCurrencyInput{Code: "AED", Name: "UAE Dirham"})
	if err != nil {
		t.Fatalf("create aed failed: %v", err)
	}

	if err := svc.Delete(usd.ID); !errors.Is(err, ErrDefaultCurrencyDelete) {
		t.Fatalf("deleting default currency want ErrDefaultCurrencyDelete got %v", err)
	}
	if err := svc.Delete(aed.ID); err != nil {
		t.Fatalf("deleting non-default currency failed: %v", err)
	}
}

func TestCurrencyDuplicateCodeRejected(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewCurrencyService(env.currencies)

	if _, err := svc.Create(CreateCurrencyInput{Code: "USD", Name: "US Dollar"}); err != nil {
		t.Fatalf("create usd failed: %v", err)
	}
	if _, err := svc.Create(CreateCurrencyInput{Code: " usd ", Name: "Duplicate"}); !errors.Is(err, ErrCodeTaken) {
		t.Fatalf("duplicate code want ErrCodeTaken got %v", err)
	}
}
