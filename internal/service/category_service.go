package service

import (
	"fmt"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CreateCategoryInput 创建分类参数
type CreateCategoryInput struct {
	Name      string
	Slug      string
	ParentID  *uint
	SortOrder int
}

// UpdateCategoryInput 更新分类参数，nil 字段不变
type UpdateCategoryInput struct {
	Name      *string
	Slug      *string
	ParentID  *uint
	SortOrder *int
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.List()
}

// Create 创建分类
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}
	existing, err := s.categories.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}
	if input.ParentID != nil {
		parent, err := s.categories.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	category := &models.Category{
		Name:      input.Name,
		Slug:      slug,
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Slug != nil {
		fields["slug"] = *input.Slug
	}
	if input.ParentID != nil {
		fields["parent_id"] = *input.ParentID
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}
	if len(fields) > 0 {
		if err := s.categories.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.categories.GetByID(id)
}

// Delete 删除分类
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(id)
}
