package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"yourlog/internal/model"
	"yourlog/internal/service"
)

// ArticleHandler bundles article HTTP handlers.
type ArticleHandler struct {
	svc service.ArticleService
}

// NewArticleHandler creates a handler layer.
func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ArticleWriteRequest represents an article creation or edit request.
type ArticleWriteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// ArticleDeleteRequest represents an article removal request.
type ArticleDeleteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ArticleResponse is the projection returned by write and edit.
type ArticleResponse struct {
	ArticleID uint   `json:"articleId"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

func articleResponse(article *model.Article, email string) ArticleResponse {
	return ArticleResponse{
		ArticleID: article.ID,
		Email:     email,
		Title:     article.Title,
		Content:   article.Content,
	}
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// Create godoc
// @Summary Create an article
// @Tags article
// @Accept json
// @Produce json
// @Param request body ArticleWriteRequest true "Article payload with credentials"
// @Success 201 {object} ArticleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /article [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req ArticleWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.svc.Create(c.Request().Context(), req.Email, req.Password, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, articleResponse(article, req.Email))
}

// Get godoc
// @Summary Get an article by id
// @Tags article
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}
	article, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// List godoc
// @Summary List articles
// @Tags article
// @Produce json
// @Success 200 {array} model.Article
// @Router /article [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Edit godoc
// @Summary Edit an owned article
// @Tags article
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param request body ArticleWriteRequest true "New title and content with credentials"
// @Success 200 {object} ArticleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id} [post]
func (h *ArticleHandler) Edit(c echo.Context) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	var req ArticleWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.svc.Edit(c.Request().Context(), id, req.Email, req.Password, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articleResponse(article, req.Email))
}

// Delete godoc
// @Summary Delete an owned article and its comments
// @Tags article
// @Accept json
// @Param article_id path int true "Article ID"
// @Param request body ArticleDeleteRequest true "Credentials"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	var req ArticleDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Remove(c.Request().Context(), id, req.Email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
