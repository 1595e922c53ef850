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

const articleCacheTTL = 5 * time.Minute

func articleCacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

func articleCommentsCacheKey(articleID uint) string {
	return fmt.Sprintf("article:%d:comments", articleID)
}

// ArticleService exposes article authoring operations.
type ArticleService interface {
	Create(ctx context.Context, email, password, title, content string) (*model.Article, error)
	Get(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Edit(ctx context.Context, id uint, email, password, title, content string) (*model.Article, error)
	Remove(ctx context.Context, id uint, email, password string) error
}

type articleService struct {
	articles repository.ArticleRepository
	verifier auth.Verifier
	cache    Cache
	uow      repository.UnitOfWork
}

// NewArticleService builds an ArticleService.
func NewArticleService(articles repository.ArticleRepository, verifier auth.Verifier, cache Cache, uow repository.UnitOfWork) ArticleService {
	return &articleService{articles: articles, verifier: verifier, cache: cache, uow: uow}
}

// Create authenticates and persists a new article owned by the resolved user.
func (s *articleService) Create(ctx context.Context, email, password, title, content string) (*model.Article, error) {
	user, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Title:   title,
		Content: content,
		UserID:  user.ID,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// Get retrieves an article by ID through the read cache.
func (s *articleService) Get(ctx context.Context, id uint) (*model.Article, error) {
	var cached model.Article
	if s.cache.GetJSON(ctx, articleCacheKey(id), &cached) {
		return &cached, nil
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, articleCacheKey(id), article, articleCacheTTL)
	return article, nil
}

func (s *articleService) List(ctx context.Context) ([]model.Article, error) {
	return s.articles.List(ctx)
}

// Edit authenticates, enforces ownership, and mutates title and content in
// place. Identifier and owner are never touched.
func (s *articleService) Edit(ctx context.Context, id uint, email, password, title, content string) (*model.Article, error) {
	user, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}
	if article.UserID != user.ID {
		return nil, apperrors.ErrNotArticleOwner
	}

	article.Title = title
	article.Content = content
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.cache.Delete(ctx, articleCacheKey(id))
	return article, nil
}

// Remove authenticates, enforces ownership, and deletes the article together
// with its comments in one transaction.
func (s *articleService) Remove(ctx context.Context, id uint, email, password string) error {
	user, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return err
	}
	if article.UserID != user.ID {
		return apperrors.ErrNotArticleOwner
	}

	err = s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Comments.DeleteByArticleID(ctx, id); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := r.Articles.DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(ctx, articleCacheKey(id))
	s.cache.Delete(ctx, articleCommentsCacheKey(id))
	return nil
}
