package repository

import (
	"context"

	"gorm.io/gorm"

	"yourlog/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	ListByArticleID(ctx context.Context, articleID uint) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteByArticleID(ctx context.Context, articleID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteByArticleUserID(ctx context.Context, userID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByArticleID(ctx context.Context, articleID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("article_id = ?", articleID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (r *commentRepository) DeleteByArticleID(ctx context.Context, articleID uint) error {
	return r.db.WithContext(ctx).Where("article_id = ?", articleID).Delete(&model.Comment{}).Error
}

func (r *commentRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Comment{}).Error
}

// DeleteByArticleUserID removes every comment attached to any article owned
// by the given user, regardless of who authored the comment.
func (r *commentRepository) DeleteByArticleUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("article_id IN (?)", r.db.Model(&model.Article{}).Select("id").Where("user_id = ?", userID)).
		Delete(&model.Comment{}).Error
}
