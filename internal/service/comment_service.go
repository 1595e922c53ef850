package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"yourlog/internal/auth"
	apperrors "yourlog/internal/errors"
	"yourlog/internal/model"
	"yourlog/internal/repository"
)

const commentCacheTTL = 5 * time.Minute

// CommentService exposes comment authoring operations.
type CommentService interface {
	Create(ctx context.Context, articleID uint, email, password, content string) (*model.Comment, error)
	ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error)
	Edit(ctx context.Context, commentID uint, email, password, content string) (*model.Comment, error)
	Remove(ctx context.Context, commentID uint, email, password string) error
}

type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	verifier auth.Verifier
	cache    Cache
}

// NewCommentService builds a CommentService.
func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, verifier auth.Verifier, cache Cache) CommentService {
	return &commentService{comments: comments, articles: articles, verifier: verifier, cache: cache}
}

// Create authenticates and attaches a new comment to an existing article.
func (s *commentService) Create(ctx context.Context, articleID uint, email, password, content string) (*model.Comment, error) {
	user, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Content:   content,
		ArticleID: articleID,
		UserID:    user.ID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.cache.Delete(ctx, articleCommentsCacheKey(articleID))
	return comment, nil
}

// ListByArticle retrieves an article's comments through the read cache.
func (s *commentService) ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error) {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}

	var cached []model.Comment
	if s.cache.GetJSON(ctx, articleCommentsCacheKey(articleID), &cached) {
		return cached, nil
	}

	comments, err := s.comments.ListByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, articleCommentsCacheKey(articleID), comments, commentCacheTTL)
	return comments, nil
}

// Edit authenticates and mutates the comment body. Any authenticated user may
// edit any comment; ownership is not checked.
func (s *commentService) Edit(ctx context.Context, commentID uint, email, password, content string) (*model.Comment, error) {
	if _, err := s.verifier.Authenticate(ctx, email, password); err != nil {
		return nil, err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.cache.Delete(ctx, articleCommentsCacheKey(comment.ArticleID))
	return comment, nil
}

// Remove authenticates and deletes the comment. Same ownership gap as Edit.
func (s *commentService) Remove(ctx context.Context, commentID uint, email, password string) error {
	if _, err := s.verifier.Authenticate(ctx, email, password); err != nil {
		return err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return err
	}

	if err := s.comments.DeleteByID(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.cache.Delete(ctx, articleCommentsCacheKey(comment.ArticleID))
	return nil
}
