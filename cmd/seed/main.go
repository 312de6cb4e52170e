package main

import (
	"fmt"
	"time"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"
	"timeshot/pkg/config"
	"timeshot/pkg/database"
	"timeshot/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of users and stories for local development. Image slots
// stay empty, uploads go through the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	storyRepo := persistent.NewStoryRepository(db)
	voteRepo := persistent.NewVoteRepository(db)

	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		return string(hashed)
	}

	admin := &entity.User{
		Email:    "admin@timeshot.local",
		Username: "admin",
		Password: hash("admin123"),
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	if _, err := userRepo.GetByEmail(admin.Email); err != nil {
		if err := userRepo.Create(admin); err != nil {
			log.Error("Failed to create admin: %v", err)
			panic(err)
		}
		log.Info("Created admin user %s", admin.Email)
	}

	testUsers := []struct {
		email    string
		username string
		city     string
	}{
		{"alice@test.com", "alice", "Riga"},
		{"bob@test.com", "bob", "Tartu"},
		{"charlie@test.com", "charlie", "Vilnius"},
	}

	users := make([]*entity.User, 0, len(testUsers))
	for _, tu := range testUsers {
		if existing, err := userRepo.GetByEmail(tu.email); err == nil {
			users = append(users, existing)
			continue
		}
		user := &entity.User{
			Email:    tu.email,
			Username: tu.username,
			Password: hash("password123"),
			Role:     entity.RoleUser,
			City:     tu.city,
			IsActive: true,
		}
		if err := userRepo.Create(user); err != nil {
			log.Error("Failed to create user %s: %v", tu.email, err)
			panic(err)
		}
		users = append(users, user)
		log.Info("Created user %s", tu.email)
	}

	descriptions := []string{
		"The corner bakery, photographed in 1987 and today",
		"Grandfather's orchard before and after the storm",
		"Our street before the tram line came back",
	}

	stories := make([]*entity.Story, 0, len(descriptions))
	for i, desc := range descriptions {
		story := &entity.Story{
			UserID:            users[i%len(users)].ID,
			Description:       desc,
			DescriptionStatus: entity.StatusPublished,
			Status:            entity.StatusPublished,
			Orientation:       entity.OrientationHorizontal,
			Week:              entity.WeekEnd(time.Now()),
		}
		if err := storyRepo.Create(story); err != nil {
			log.Error("Failed to create story: %v", err)
			panic(err)
		}
		stories = append(stories, story)
	}
	log.Info("Created %d stories", len(stories))

	// Cross-votes, never for one's own story
	for _, story := range stories {
		for _, user := range users {
			if user.ID == story.UserID {
				continue
			}
			if _, _, err := voteRepo.GetOrCreate(user.ID, story.ID); err != nil {
				log.Error("Failed to create vote: %v", err)
				panic(err)
			}
		}
	}

	log.Info("Database seeded successfully!")
}
