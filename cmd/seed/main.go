package main

import (
	"context"
	"log"
	"os"

	"github.com/fitlife-app/FitLifeBack/internal/database"
	"github.com/fitlife-app/FitLifeBack/internal/repository"
	"github.com/joho/godotenv"
)

type workoutSeed struct {
	title       string
	description string
	duration    int
	user        string
	category    string
}

var categorySeeds = []string{"Cardio", "Strength Training", "Yoga", "HIIT", "Sports"}

type userSeed struct {
	firstName string
	lastName  string
	email     string
	age       int
}

var userSeeds = []userSeed{
	{"Alex", "Johnson", "alex.johnson@fitlife.com", 28},
	{"Sarah", "Williams", "sarah.williams@fitlife.com", 32},
	{"Mike", "Davis", "mike.davis@fitlife.com", 25},
	{"Emma", "Brown", "emma.brown@fitlife.com", 29},
}

var workoutSeeds = []workoutSeed{
	{"Morning Run", "5K run in the park, felt great!", 30, "Alex", "Cardio"},
	{"Upper Body Strength", "Bench press, rows, and shoulder press", 45, "Alex", "Strength Training"},
	{"Evening Cycling", "15km bike ride around the city", 40, "Alex", "Cardio"},
	{"Vinyasa Flow", "Relaxing yoga session focusing on breathing", 60, "Sarah", "Yoga"},
	{"Leg Day", "Squats, lunges, and deadlifts", 50, "Sarah", "Strength Training"},
	{"Power Yoga", "Intense yoga workout with challenging poses", 55, "Sarah", "Yoga"},
	{"Tabata Training", "20 seconds on, 10 seconds off - full body workout", 25, "Mike", "HIIT"},
	{"Basketball Practice", "Pick-up game at the local court", 90, "Mike", "Sports"},
	{"HIIT Circuit", "Burpees, mountain climbers, jump squats", 30, "Mike", "HIIT"},
	{"Swimming Laps", "40 laps in the pool, working on technique", 45, "Mike", "Cardio"},
	{"Core Strength", "Planks, crunches, and Russian twists", 35, "Emma", "Strength Training"},
	{"Tennis Match", "Doubles match with friends", 75, "Emma", "Sports"},
	{"Spin Class", "High-intensity cycling class at the gym", 45, "Emma", "Cardio"},
	{"Stretching Session", "Full body stretching and mobility work", 20, "Alex", ""},
	{"Walking", "Casual walk in the neighborhood", 30, "Emma", ""},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	db, err := database.Connect(dbUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Wipe in dependency order before reseeding.
	for _, table := range []string{"workouts", "categories", "users"} {
		if _, err := db.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	log.Println("Creating categories...")
	categoryIDs := make(map[string]int64, len(categorySeeds))
	for _, name := range categorySeeds {
		category, err := categoryRepo.Create(ctx, name, nil)
		if err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		categoryIDs[name] = category.ID
	}

	log.Println("Creating users...")
	userIDs := make(map[string]int64, len(userSeeds))
	for _, seed := range userSeeds {
		user, err := userRepo.Create(ctx, repository.CreateUserInput{
			FirstName: seed.firstName,
			LastName:  seed.lastName,
			Email:     seed.email,
			Age:       seed.age,
		})
		if err != nil {
			log.Fatalf("Failed to create user %q: %v", seed.email, err)
		}
		userIDs[seed.firstName] = user.ID
	}

	log.Println("Creating workouts...")
	for _, seed := range workoutSeeds {
		description := seed.description
		var categoryID *int64
		if seed.category != "" {
			id := categoryIDs[seed.category]
			categoryID = &id
		}
		if _, err := workoutRepo.Create(ctx, repository.CreateWorkoutInput{
			Title:           seed.title,
			Description:     &description,
			DurationMinutes: seed.duration,
			UserID:          userIDs[seed.user],
			CategoryID:      categoryID,
		}); err != nil {
			log.Fatalf("Failed to create workout %q: %v", seed.title, err)
		}
	}

	log.Printf("Seed completed: %d users, %d categories, %d workouts",
		len(userSeeds), len(categorySeeds), len(workoutSeeds))
}
