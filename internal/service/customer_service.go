package service

import (
	"fmt"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// CustomerService 客户服务
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CreateCustomerInput 创建客户参数
type CreateCustomerInput struct {
	Email    string
	Name     string
	Phone    string
	IsActive *bool
}

// UpdateCustomerInput 更新客户参数，nil 字段不变
type UpdateCustomerInput struct {
	Email    *string
	Name     *string
	Phone    *string
	IsActive *bool
}

// List 客户列表
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.customers.List(filter)
}

// Get 根据 ID 或邮箱获取客户
func (s *CustomerService) Get(id uint, email string) (*models.Customer, error) {
	var customer *models.Customer
	var err error
	if id != 0 {
		customer, err = s.customers.GetByID(id)
	} else {
		customer, err = s.customers.GetByEmail(email)
	}
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// Create 创建客户
func (s *CustomerService) Create(input CreateCustomerInput) (*models.Customer, error) {
	existing, err := s.customers.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, input.Email)
	}

	customer := &models.Customer{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		IsActive: true,
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}
	if err := s.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update 更新客户
func (s *CustomerService) Update(id uint, input UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	fields := map[string]interface{}{}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.customers.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.customers.GetByID(id)
}

// Delete 删除客户
func (s *CustomerService) Delete(id uint) error {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return s.customers.Delete(id)
}
