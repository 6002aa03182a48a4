package repository

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/models"

	"gorm.io/gorm"
)

// SettingRepository 站点配置数据访问接口
type SettingRepository interface {
	Get(key string) (*models.Setting, error)
	Upsert(key string, value models.JSON) error
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建配置仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get 根据键获取配置
func (r *GormSettingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert 写入配置，键已存在时整体覆盖
func (r *GormSettingRepository) Upsert(key string, value models.JSON) error {
	existing, err := r.Get(key)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(&models.Setting{Key: key, ValueJSON: value}).Error
	}
	return r.db.Model(&models.Setting{}).Where("key = ?", key).
		Update("value_json", value).Error
}
