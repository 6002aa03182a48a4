package repository

import (
	"gorm.io/gorm"
)

// ReadOnlyQuerier 只读 SQL 查询接口，供临时报表使用
type ReadOnlyQuerier interface {
	Query(sql string) ([]map[string]interface{}, error)
}

// GormReadOnlyQuerier GORM 实现
type GormReadOnlyQuerier struct {
	db *gorm.DB
}

// NewReadOnlyQuerier 创建只读查询器
func NewReadOnlyQuerier(db *gorm.DB) *GormReadOnlyQuerier {
	return &GormReadOnlyQuerier{db: db}
}

// Query 执行查询并返回行映射，列序由驱动决定
func (r *GormReadOnlyQuerier) Query(sql string) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
