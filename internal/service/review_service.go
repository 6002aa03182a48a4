package service

import (
	"fmt"

	"github.com/siwaht/thriftysouq/internal/constants"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
)

// ReviewService 评价服务
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// CreateReviewInput 创建评价参数
type CreateReviewInput struct {
	ProductID     uint
	CustomerName  string
	CustomerEmail string
	Rating        int
	Title         string
	Comment       string
	Status        string
}

// UpdateReviewInput 更新评价参数，nil 字段不变
type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
	Status  *string
}

// List 评价列表
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviews.List(filter)
}

// Create 创建评价
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", input.Rating)
	}
	product, err := s.products.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	status := input.Status
	if status == "" {
		status = constants.ReviewStatusPending
	}
	if !containsString(constants.ReviewStatuses, status) {
		return nil, fmt.Errorf("invalid review status: %s", status)
	}

	review := &models.Review{
		ProductID:     input.ProductID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Rating:        input.Rating,
		Title:         input.Title,
		Comment:       input.Comment,
		Status:        status,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update 更新评价
func (s *ReviewService) Update(id uint, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	fields := map[string]interface{}{}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, fmt.Errorf("rating must be between 1 and 5, got %d", *input.Rating)
		}
		fields["rating"] = *input.Rating
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Comment != nil {
		fields["comment"] = *input.Comment
	}
	if input.Status != nil {
		if !containsString(constants.ReviewStatuses, *input.Status) {
			return nil, fmt.Errorf("invalid review status: %s", *input.Status)
		}
		fields["status"] = *input.Status
	}
	if len(fields) > 0 {
		if err := s.reviews.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.reviews.GetByID(id)
}

// Delete 删除评价
func (s *ReviewService) Delete(id uint) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviews.Delete(id)
}
