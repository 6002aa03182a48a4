package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// FooterRepository 页脚数据访问接口
type FooterRepository interface {
	ListSections() ([]models.FooterSection, error)
	GetSectionByID(id uint) (*models.FooterSection, error)
	CreateSection(section *models.FooterSection) error
	UpdateSectionFields(id uint, fields map[string]interface{}) error
	DeleteSection(id uint) error
	CreateLink(link *models.FooterLink) error
	GetLinkByID(id uint) (*models.FooterLink, error)
	UpdateLinkFields(id uint, fields map[string]interface{}) error
	DeleteLink(id uint) error
}

// GormFooterRepository GORM 实现
type GormFooterRepository struct {
	db *gorm.DB
}

// NewFooterRepository 创建页脚仓库
func NewFooterRepository(db *gorm.DB) *GormFooterRepository {
	return &GormFooterRepository{db: db}
}

// ListSections 页脚分区列表（含链接）
func (r *GormFooterRepository) ListSections() ([]models.FooterSection, error) {
	var sections []models.FooterSection
	err := r.db.Preload("Links", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("sort_order ASC, id ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSectionByID 根据 ID 获取分区
func (r *GormFooterRepository) GetSectionByID(id uint) (*models.FooterSection, error) {
	var section models.FooterSection
	if err := r.db.Preload("Links").First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

// CreateSection 创建分区
func (r *GormFooterRepository) CreateSection(section *models.FooterSection) error {
	return r.db.Create(section).Error
}

// UpdateSectionFields 按字段更新分区
func (r *GormFooterRepository) UpdateSectionFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.FooterSection{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// DeleteSection 删除分区及其链接
func (r *GormFooterRepository) DeleteSection(id uint) error {
	if err := r.db.Where("section_id = ?", id).Delete(&models.FooterLink{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.FooterSection{}, id).Error
}

// CreateLink 创建链接
func (r *GormFooterRepository) CreateLink(link *models.FooterLink) error {
	return r.db.Create(link).Error
}

// GetLinkByID 根据 ID 获取链接
func (r *GormFooterRepository) GetLinkByID(id uint) (*models.FooterLink, error) {
	var link models.FooterLink
	if err := r.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// UpdateLinkFields 按字段更新链接
func (r *GormFooterRepository) UpdateLinkFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.FooterLink{}).Where("id = ?", id).Updates(withUpdatedAt(fields)).Error
}

// DeleteLink 删除链接
func (r *GormFooterRepository) DeleteLink(id uint) error {
	return r.db.Delete(&models.FooterLink{}, id).Error
}
