package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "yourlog/internal/errors"
	"yourlog/internal/model"
)

func TestCommentService_Create(t *testing.T) {
	author := &model.User{ID: 3, Email: "c@x.com"}
	parent := &model.Article{ID: 10, UserID: 1}

	tests := []struct {
		name          string
		setupMock     func(*MockVerifier, *MockArticleRepository, *MockCommentRepository)
		expectedError error
	}{
		{
			name: "successful create",
			setupMock: func(v *MockVerifier, a *MockArticleRepository, c *MockCommentRepository) {
				v.On("Authenticate", mock.Anything, "c@x.com", "p").Return(author, nil)
				a.On("FindByID", mock.Anything, uint(10)).Return(parent, nil)
				c.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "missing parent article",
			setupMock: func(v *MockVerifier, a *MockArticleRepository, c *MockCommentRepository) {
				v.On("Authenticate", mock.Anything, "c@x.com", "p").Return(author, nil)
				a.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrArticleNotFound,
		},
		{
			name: "wrong credential",
			setupMock: func(v *MockVerifier, a *MockArticleRepository, c *MockCommentRepository) {
				v.On("Authenticate", mock.Anything, "c@x.com", "p").Return(nil, apperrors.ErrAuthentication)
			},
			expectedError: apperrors.ErrAuthentication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVerifier := new(MockVerifier)
			mockArticles := new(MockArticleRepository)
			mockComments := new(MockCommentRepository)
			tt.setupMock(mockVerifier, mockArticles, mockComments)

			svc := NewCommentService(mockComments, mockArticles, mockVerifier, stubCache{})
			comment, err := svc.Create(context.Background(), 10, "c@x.com", "p", "nice post")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, comment)
				mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "nice post", comment.Content)
				assert.Equal(t, uint(10), comment.ArticleID)
				assert.Equal(t, author.ID, comment.UserID)
			}

			mockVerifier.AssertExpectations(t)
			mockArticles.AssertExpectations(t)
			mockComments.AssertExpectations(t)
		})
	}
}

func TestCommentService_Edit(t *testing.T) {
	stored := func() *model.Comment {
		return &model.Comment{ID: 5, Content: "old", ArticleID: 10, UserID: 3}
	}

	t.Run("any authenticated user may edit any comment", func(t *testing.T) {
		// User 2 did not author comment 5; the edit still goes through.
		other := &model.User{ID: 2, Email: "b@x.com"}
		mockVerifier := new(MockVerifier)
		mockComments := new(MockCommentRepository)
		mockVerifier.On("Authenticate", mock.Anything, "b@x.com", "p").Return(other, nil)
		mockComments.On("FindByID", mock.Anything, uint(5)).Return(stored(), nil)
		mockComments.On("Update", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		svc := NewCommentService(mockComments, new(MockArticleRepository), mockVerifier, stubCache{})
		comment, err := svc.Edit(context.Background(), 5, "b@x.com", "p", "new")

		assert.NoError(t, err)
		assert.Equal(t, "new", comment.Content)
		assert.Equal(t, uint(3), comment.UserID)
		mockComments.AssertExpectations(t)
	})

	t.Run("missing comment maps to not found", func(t *testing.T) {
		mockVerifier := new(MockVerifier)
		mockComments := new(MockCommentRepository)
		mockVerifier.On("Authenticate", mock.Anything, "b@x.com", "p").
			Return(&model.User{ID: 2, Email: "b@x.com"}, nil)
		mockComments.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockComments, new(MockArticleRepository), mockVerifier, stubCache{})
		_, err := svc.Edit(context.Background(), 99, "b@x.com", "p", "new")

		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})

	t.Run("wrong credential mutates nothing", func(t *testing.T) {
		mockVerifier := new(MockVerifier)
		mockComments := new(MockCommentRepository)
		mockVerifier.On("Authenticate", mock.Anything, "b@x.com", "wrong").Return(nil, apperrors.ErrAuthentication)

		svc := NewCommentService(mockComments, new(MockArticleRepository), mockVerifier, stubCache{})
		_, err := svc.Edit(context.Background(), 5, "b@x.com", "wrong", "new")

		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
		mockComments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCommentService_Remove(t *testing.T) {
	stored := &model.Comment{ID: 5, Content: "old", ArticleID: 10, UserID: 3}

	t.Run("any authenticated user may delete any comment", func(t *testing.T) {
		mockVerifier := new(MockVerifier)
		mockComments := new(MockCommentRepository)
		mockVerifier.On("Authenticate", mock.Anything, "b@x.com", "p").
			Return(&model.User{ID: 2, Email: "b@x.com"}, nil)
		mockComments.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		mockComments.On("DeleteByID", mock.Anything, uint(5)).Return(nil)

		svc := NewCommentService(mockComments, new(MockArticleRepository), mockVerifier, stubCache{})
		err := svc.Remove(context.Background(), 5, "b@x.com", "p")

		assert.NoError(t, err)
		mockComments.AssertExpectations(t)
	})

	t.Run("missing comment maps to not found", func(t *testing.T) {
		mockVerifier := new(MockVerifier)
		mockComments := new(MockCommentRepository)
		mockVerifier.On("Authenticate", mock.Anything, "b@x.com", "p").
			Return(&model.User{ID: 2, Email: "b@x.com"}, nil)
		mockComments.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockComments, new(MockArticleRepository), mockVerifier, stubCache{})
		err := svc.Remove(context.Background(), 99, "b@x.com", "p")

		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
		mockComments.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
