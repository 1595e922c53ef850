package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yourlog/internal/model"
	"yourlog/internal/service"
)

// CommentHandler bundles comment HTTP handlers.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a handler layer.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CommentWriteRequest represents a comment creation or edit request.
type CommentWriteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// CommentDeleteRequest represents a comment removal request.
type CommentDeleteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CommentResponse is the projection returned by write and edit.
type CommentResponse struct {
	CommentID uint   `json:"commentId"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}

func commentResponse(comment *model.Comment, email string) CommentResponse {
	return CommentResponse{
		CommentID: comment.ID,
		Email:     email,
		Content:   comment.Content,
	}
}

// Create godoc
// @Summary Comment on an article
// @Tags comment
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param request body CommentWriteRequest true "Comment payload with credentials"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id}/comment [post]
func (h *CommentHandler) Create(c echo.Context) error {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	var req CommentWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.svc.Create(c.Request().Context(), articleID, req.Email, req.Password, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, commentResponse(comment, req.Email))
}

// List godoc
// @Summary List an article's comments
// @Tags comment
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id}/comment [get]
func (h *CommentHandler) List(c echo.Context) error {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		return err
	}
	comments, err := h.svc.ListByArticle(c.Request().Context(), articleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Edit godoc
// @Summary Edit a comment
// @Tags comment
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param comment_id path int true "Comment ID"
// @Param request body CommentWriteRequest true "New content with credentials"
// @Success 200 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id}/comment/{comment_id} [post]
func (h *CommentHandler) Edit(c echo.Context) error {
	// Comment ids are global; the article segment is kept for the route shape
	// but not consulted here.
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	var req CommentWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.svc.Edit(c.Request().Context(), commentID, req.Email, req.Password, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentResponse(comment, req.Email))
}

// Delete godoc
// @Summary Delete a comment
// @Tags comment
// @Accept json
// @Param article_id path int true "Article ID"
// @Param comment_id path int true "Comment ID"
// @Param request body CommentDeleteRequest true "Credentials"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /article/{article_id}/comment/{comment_id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	var req CommentDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Remove(c.Request().Context(), commentID, req.Email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
