package repository

import (
	"errors"
	"time"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// CurrencyRepository 货币数据访问接口
type CurrencyRepository interface {
	List() ([]models.Currency, error)
	GetByID(id uint) (*models.Currency, error)
	GetByCode(code string) (*models.Currency, error)
	Create(currency *models.Currency) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	ClearDefaultExcept(id uint) error
}

// GormCurrencyRepository GORM 实现
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository 创建货币仓库
func NewCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// List 货币列表
func (r *GormCurrencyRepository) List() ([]models.Currency, error) {
	var currencies []models.Currency
	if err := r.db.Order("code ASC").Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

// GetByID 根据 ID 获取货币
func (r *GormCurrencyRepository) GetByID(id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &currency, nil
}

// GetByCode 根据代码获取货币
func (r *GormCurrencyRepository) GetByCode(code string) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.Where("code = ?", code).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &currency, nil
}

// Create 创建货币
func (r *GormCurrencyRepository) Create(currency *models.Currency) error {
	return r.db.Create(currency).Error
}

// UpdateFields 按字段更新货币
func (r *GormCurrencyRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Currency{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// Delete 删除货币
func (r *GormCurrencyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Currency{}, id).Error
}

// ClearDefaultExcept 清除除指定 ID 外所有货币的默认标记。
// id 为 0 时清除全部。
func (r *GormCurrencyRepository) ClearDefaultExcept(id uint) error {
	query := r.db.Model(&models.Currency{}).Where("is_default = ?", true)
	if id != 0 {
		query = query.Where("id != ?", id)
	}
	return query.Updates(map[string]interface{}{
		"is_default": false,
		"updated_at": time.Now(),
	}).Error
}
