package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yourlog/internal/auth"
	apperrors "yourlog/internal/errors"
	"yourlog/internal/model"
	"yourlog/internal/repository"
)

// UserService exposes registration and account removal.
type UserService interface {
	Register(ctx context.Context, email, username, password string) (*model.User, error)
	Remove(ctx context.Context, email, password string) error
}

type userService struct {
	users    repository.UserRepository
	articles repository.ArticleRepository
	verifier auth.Verifier
	cache    Cache
	uow      repository.UnitOfWork
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, articles repository.ArticleRepository, verifier auth.Verifier, cache Cache, uow repository.UnitOfWork) UserService {
	return &userService{users: users, articles: articles, verifier: verifier, cache: cache, uow: uow}
}

// Register stores a new user with a one-way encoded credential. Email
// uniqueness is enforced by the store's unique index, not pre-checked here.
func (s *userService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Remove authenticates and deletes the user together with everything they
// own: comments they authored, comments on their articles, their articles,
// then the user row itself, all in one transaction. Cached reads of the
// removed articles are evicted once the transaction commits.
func (s *userService) Remove(ctx context.Context, email, password string) error {
	user, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	// Snapshot the owned article ids before the rows disappear.
	owned, err := s.articles.ListByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("list owned articles: %w", err)
	}

	err = s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Comments.DeleteByUserID(ctx, user.ID); err != nil {
			return fmt.Errorf("delete authored comments: %w", err)
		}
		if err := r.Comments.DeleteByArticleUserID(ctx, user.ID); err != nil {
			return fmt.Errorf("delete comments on owned articles: %w", err)
		}
		if err := r.Articles.DeleteByUserID(ctx, user.ID); err != nil {
			return fmt.Errorf("delete articles: %w", err)
		}
		if err := r.Users.DeleteByID(ctx, user.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, article := range owned {
		s.cache.Delete(ctx, articleCacheKey(article.ID))
		s.cache.Delete(ctx, articleCommentsCacheKey(article.ID))
	}
	return nil
}
