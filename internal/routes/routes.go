package routes

import (
	"github.com/fitlife-app/FitLifeBack/internal/handlers"
	"github.com/fitlife-app/FitLifeBack/internal/repository"
	"github.com/fitlife-app/FitLifeBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	statsService := services.NewStatsService(userRepo, workoutRepo, categoryRepo)

	usersHandler := handlers.NewUsersHandler(userRepo, workoutRepo)
	categoriesHandler := handlers.NewCategoriesHandler(categoryRepo, workoutRepo)
	workoutsHandler := handlers.NewWorkoutsHandler(workoutRepo, userRepo, categoryRepo)
	statsHandler := handlers.NewStatsHandler(statsService)

	users := app.Group("/users")
	users.Get("", usersHandler.List)
	users.Get("/:id", usersHandler.Get)
	users.Post("", usersHandler.Create)
	users.Put("/:id", usersHandler.Update)
	users.Delete("/:id", usersHandler.Delete)

	categories := app.Group("/categories")
	categories.Get("", categoriesHandler.List)
	categories.Get("/:id", categoriesHandler.Get)
	categories.Post("", categoriesHandler.Create)
	categories.Put("/:id", categoriesHandler.Update)
	categories.Delete("/:id", categoriesHandler.Delete)

	workouts := app.Group("/workouts")
	workouts.Get("", workoutsHandler.List)
	workouts.Get("/:id", workoutsHandler.Get)
	workouts.Post("", workoutsHandler.Create)
	workouts.Put("/:id", workoutsHandler.Update)
	workouts.Delete("/:id", workoutsHandler.Delete)

	stats := app.Group("/stats")
	stats.Get("", statsHandler.Overview)
	stats.Get("/users/:id", statsHandler.UserStats)
}
