package repository

import (
	"context"
	"errors"

	"bloglist/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog data operations.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID loads a blog with its owner. A missing record reports the same
// malformatted-id failure as an unparsable one; the API does not
// distinguish the two.
func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Preload("User").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewMalformedIDError()
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
