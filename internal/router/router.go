package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"yourlog/internal/config"
	apperrors "yourlog/internal/errors"
	"yourlog/internal/handler"
	"yourlog/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	e.Use(limiter.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	user := api.Group("/user")
	user.POST("", userHandler.Register)
	user.DELETE("", userHandler.Delete)

	article := api.Group("/article")
	article.POST("", articleHandler.Create)
	article.GET("", articleHandler.List)
	article.GET("/:article_id", articleHandler.Get)
	article.POST("/:article_id", articleHandler.Edit)
	article.DELETE("/:article_id", articleHandler.Delete)

	comment := article.Group("/:article_id/comment")
	comment.POST("", commentHandler.Create)
	comment.GET("", commentHandler.List)
	comment.POST("/:comment_id", commentHandler.Edit)
	comment.DELETE("/:comment_id", commentHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HTTPErrorHandler is the single place where domain errors become HTTP
// responses. Services return sentinel errors; handlers pass them through.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		// Binding, validation, routing and rate-limit failures arrive as
		// echo errors; fold them into the same envelope.
		httpErr = apperrors.NewHTTPError(echoErr.Code, statusLabel(echoErr.Code), fmt.Sprintf("%v", echoErr.Message))
	} else {
		httpErr = apperrors.MapErrorToHTTP(err)
	}

	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	resp := httpErr.ToErrorResponse(c.Request().RequestURI)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.StatusCode)
	} else {
		err = c.JSON(httpErr.StatusCode, resp)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func statusLabel(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}
