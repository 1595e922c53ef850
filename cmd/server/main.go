package main

import (
	"log"
	"net/http"

	_ "yourlog/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"yourlog/internal/auth"
	"yourlog/internal/cache"
	"yourlog/internal/config"
	"yourlog/internal/db"
	"yourlog/internal/handler"
	"yourlog/internal/model"
	"yourlog/internal/repository"
	"yourlog/internal/router"
	"yourlog/internal/service"
)

// @title Yourlog API
// @version 1.0
// @description Blogging backend with per-request credential authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories and the transactional unit of work
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	uow := repository.NewUnitOfWork(gormDB)

	verifier := auth.NewVerifier(userRepo)

	// Services
	userService := service.NewUserService(userRepo, articleRepo, verifier, cacheClient, uow)
	articleService := service.NewArticleService(articleRepo, verifier, cacheClient, uow)
	commentService := service.NewCommentService(commentRepo, articleRepo, verifier, cacheClient)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)

	router.Register(e, cfg, userHandler, articleHandler, commentHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
