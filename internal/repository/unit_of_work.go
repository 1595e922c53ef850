package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the three repositories over one database handle,
// either the root connection or a single transaction.
type Repositories struct {
	Users    UserRepository
	Articles ArticleRepository
	Comments CommentRepository
}

// NewRepositories builds the bundle over the given handle.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Articles: NewArticleRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// UnitOfWork runs a sequence of repository operations atomically. Cascade
// deletes depend on it for all-or-nothing behavior.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork builds a GORM transaction runner.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(r Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
