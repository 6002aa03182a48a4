package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// AdminUserRepository 管理员数据访问接口
type AdminUserRepository interface {
	List() ([]models.AdminUser, error)
	GetByID(id uint) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// GormAdminUserRepository GORM 实现
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository 创建管理员仓库
func NewAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// List 管理员列表
func (r *GormAdminUserRepository) List() ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID 根据 ID 获取管理员
func (r *GormAdminUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取管理员
func (r *GormAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建管理员
func (r *GormAdminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

// UpdateFields 按字段更新管理员
func (r *GormAdminUserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// Delete 删除管理员
func (r *GormAdminUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.AdminUser{}, id).Error
}
