package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"yourlog/internal/auth"
	"yourlog/internal/config"
	"yourlog/internal/db"
	"yourlog/internal/model"
	"yourlog/internal/repository"
)

type seedUser struct {
	Email    string
	Username string
	Password string
	Articles []seedArticle
}

type seedArticle struct {
	Title    string
	Content  string
	Comments []string
}

var fixtures = []seedUser{
	{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct-horse",
		Articles: []seedArticle{
			{
				Title:    "Hello, yourlog",
				Content:  "First post on a freshly seeded database.",
				Comments: []string{"Welcome!", "Looking forward to more."},
			},
			{
				Title:   "Second thoughts",
				Content: "A follow-up with no comments yet.",
			},
		},
	},
	{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "battery-staple",
		Articles: []seedArticle{
			{
				Title:    "Reading list",
				Content:  "Things worth reading this month.",
				Comments: []string{"Nice picks."},
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Article{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repos := repository.NewRepositories(gormDB)
	ctx := context.Background()

	created, skipped, err := seed(ctx, repos)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users skipped (already present): %d", skipped)
}

// seed inserts each fixture user with their articles and comments. Users that
// already exist are skipped entirely so the script stays re-runnable.
func seed(ctx context.Context, repos repository.Repositories) (created, skipped int, err error) {
	for _, fixture := range fixtures {
		existing, err := repos.Users.FindByEmail(ctx, fixture.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, err
		}
		if existing != nil {
			log.Printf("Skipping %s, already present", fixture.Email)
			skipped++
			continue
		}

		hash, err := auth.HashPassword(fixture.Password)
		if err != nil {
			return created, skipped, err
		}

		user := &model.User{
			Email:        fixture.Email,
			Username:     fixture.Username,
			PasswordHash: hash,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return created, skipped, err
		}

		for _, art := range fixture.Articles {
			article := &model.Article{
				Title:   art.Title,
				Content: art.Content,
				UserID:  user.ID,
			}
			if err := repos.Articles.Create(ctx, article); err != nil {
				return created, skipped, err
			}

			for _, body := range art.Comments {
				comment := &model.Comment{
					Content:   body,
					ArticleID: article.ID,
					UserID:    user.ID,
				}
				if err := repos.Comments.Create(ctx, comment); err != nil {
					return created, skipped, err
				}
			}
		}

		created++
	}

	return created, skipped, nil
}
