package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "yourlog/internal/errors"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedStatus string
	}{
		{"authentication failure", apperrors.ErrAuthentication, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"ownership failure", apperrors.ErrNotArticleOwner, http.StatusForbidden, "FORBIDDEN"},
		{"article not found", apperrors.ErrArticleNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"comment not found", apperrors.ErrCommentNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate email", apperrors.ErrDuplicateEmail, http.StatusConflict, "CONFLICT"},
		{"validation failure", echo.NewHTTPError(http.StatusBadRequest, "title is required"), http.StatusBadRequest, "BAD_REQUEST"},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/article", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, "/api/v1/article", resp.RequestURI)
			assert.False(t, resp.Time.IsZero())
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHTTPErrorHandler_InternalMessageIsOpaque(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(errors.New("dsn: secret detail"), c)

	var resp apperrors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, resp.Message, "secret")
}
