package service

import (
	"fmt"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// PageService 静态页服务
type PageService struct {
	pages repository.PageRepository
}

// NewPageService 创建静态页服务
func NewPageService(pages repository.PageRepository) *PageService {
	return &PageService{pages: pages}
}

// CreatePageInput 创建静态页参数
type CreatePageInput struct {
	Slug        string
	Title       string
	Content     string
	IsPublished *bool
}

// UpdatePageInput 更新静态页参数，nil 字段不变
type UpdatePageInput struct {
	Slug        *string
	Title       *string
	Content     *string
	IsPublished *bool
}

// List 静态页列表
func (s *PageService) List(filter repository.PageListFilter) ([]models.Page, int64, error) {
	return s.pages.List(filter)
}

// Get 根据 ID 或 slug 获取静态页
func (s *PageService) Get(id uint, slug string) (*models.Page, error) {
	var page *models.Page
	var err error
	if id != 0 {
		page, err = s.pages.GetByID(id)
	} else {
		page, err = s.pages.GetBySlug(slug)
	}
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// Create 创建静态页，slug 缺省时由标题派生
func (s *PageService) Create(input CreatePageInput) (*models.Page, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	existing, err := s.pages.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}

	page := &models.Page{
		Slug:        slug,
		Title:       input.Title,
		Content:     input.Content,
		IsPublished: true,
	}
	if input.IsPublished != nil {
		page.IsPublished = *input.IsPublished
	}
	if err := s.pages.Create(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update 更新静态页
func (s *PageService) Update(id uint, input UpdatePageInput) (*models.Page, error) {
	page, err := s.pages.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	fields := map[string]interface{}{}
	if input.Slug != nil {
		fields["slug"] = *input.Slug
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.IsPublished != nil {
		fields["is_published"] = *input.IsPublished
	}
	if len(fields) > 0 {
		if err := s.pages.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.pages.GetByID(id)
}

// Delete 删除静态页
func (s *PageService) Delete(id uint) error {
	page, err := s.pages.GetByID(id)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrPageNotFound
	}
	return s.pages.Delete(id)
}
