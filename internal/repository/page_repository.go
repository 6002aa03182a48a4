package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// PageRepository 静态页数据访问接口
type PageRepository interface {
	List(filter PageListFilter) ([]models.Page, int64, error)
	GetByID(id uint) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	Create(page *models.Page) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// GormPageRepository GORM 实现
type GormPageRepository struct {
	db *gorm.DB
}

// NewPageRepository 创建静态页仓库
func NewPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// List 静态页列表
func (r *GormPageRepository) List(filter PageListFilter) ([]models.Page, int64, error) {
	query := r.db.Model(&models.Page{})
	query = applySearch(query, filter.Search, "title", "slug")
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	query = applyWindow(query, filter.Window)

	var pages []models.Page
	if err := query.Find(&pages).Error; err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// GetByID 根据 ID 获取静态页
func (r *GormPageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug 根据 slug 获取静态页
func (r *GormPageRepository) GetBySlug(slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// Create 创建静态页
func (r *GormPageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// UpdateFields 按字段更新静态页
func (r *GormPageRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Page{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// Delete 删除静态页
func (r *GormPageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}
