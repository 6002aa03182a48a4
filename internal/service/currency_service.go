package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// CurrencyService 货币服务
// 维护默认货币排他性：同一时刻至多一条 is_default = true。
type CurrencyService struct {
	currencies repository.CurrencyRepository
}

// NewCurrencyService 创建货币服务
func NewCurrencyService(currencies repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencies: currencies}
}

// CreateCurrencyInput 创建货币参数
type CreateCurrencyInput struct {
	Code         string
	Name         string
	Symbol       string
	ExchangeRate decimal.Decimal
	IsDefault    bool
	IsActive     *bool
}

// UpdateCurrencyInput 更新货币参数，nil 字段不变
type UpdateCurrencyInput struct {
	Name         *string
	Symbol       *string
	ExchangeRate *decimal.Decimal
	IsDefault    *bool
	IsActive     *bool
}

// List 货币列表
func (s *CurrencyService) List() ([]models.Currency, error) {
	return s.currencies.List()
}

// Create 创建货币。设为默认时先清除其余默认标记。
func (s *CurrencyService) Create(input CreateCurrencyInput) (*models.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	existing, err := s.currencies.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrCodeTaken, code)
	}

	if input.IsDefault {
		if err := s.currencies.ClearDefaultExcept(0); err != nil {
			return nil, err
		}
	}

	rate := input.ExchangeRate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	currency := &models.Currency{
		Code:         code,
		Name:         input.Name,
		Symbol:       input.Symbol,
		ExchangeRate: rate,
		IsDefault:    input.IsDefault,
		IsActive:     true,
	}
	if input.IsActive != nil {
		currency.IsActive = *input.IsActive
	}
	if err := s.currencies.Create(currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// Update 更新货币。设为默认时先清除其余默认标记。
func (s *CurrencyService) Update(id uint, input UpdateCurrencyInput) (*models.Currency, error) {
	currency, err := s.currencies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, ErrCurrencyNotFound
	}

	if input.IsDefault != nil && *input.IsDefault {
		if err := s.currencies.ClearDefaultExcept(id); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Symbol != nil {
		fields["symbol"] = *input.Symbol
	}
	if input.ExchangeRate != nil {
		fields["exchange_rate"] = *input.ExchangeRate
	}
	if input.IsDefault != nil {
		fields["is_default"] = *input.IsDefault
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.currencies.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.currencies.GetByID(id)
}

// Delete 删除货币。默认货币不可删除。
func (s *CurrencyService) Delete(id uint) error {
	currency, err := s.currencies.GetByID(id)
	if err != nil {
		return err
	}
	if currency == nil {
		return ErrCurrencyNotFound
	}
	if currency.IsDefault {
		return ErrDefaultCurrencyDelete
	}
	return s.currencies.Delete(id)
}
