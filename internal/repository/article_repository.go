package repository

import (
	"context"

	"gorm.io/gorm"

	"yourlog/internal/model"
)

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Article, error)
	Update(ctx context.Context, article *model.Article) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, id).Error
}

func (r *articleRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Article{}).Error
}
