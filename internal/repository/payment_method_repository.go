package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// PaymentMethodRepository 支付方式数据访问接口
type PaymentMethodRepository interface {
	List() ([]models.PaymentMethod, error)
	GetByID(id uint) (*models.PaymentMethod, error)
	GetByCode(code string) (*models.PaymentMethod, error)
	Create(method *models.PaymentMethod) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// GormPaymentMethodRepository GORM 实现
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository 创建支付方式仓库
func NewPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// List 支付方式列表
func (r *GormPaymentMethodRepository) List() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.Order("sort_order ASC, id ASC").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// GetByID 根据 ID 获取支付方式
func (r *GormPaymentMethodRepository) GetByID(id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// GetByCode 根据代码获取支付方式
func (r *GormPaymentMethodRepository) GetByCode(code string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.Where("code = ?", code).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// Create 创建支付方式
func (r *GormPaymentMethodRepository) Create(method *models.PaymentMethod) error {
	return r.db.Create(method).Error
}

// UpdateFields 按字段更新支付方式
func (r *GormPaymentMethodRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.PaymentMethod{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// Delete 删除支付方式
func (r *GormPaymentMethodRepository) Delete(id uint) error {
	return r.db.Delete(&models.PaymentMethod{}, id).Error
}
