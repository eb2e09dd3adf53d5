package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/fitlife-app/FitLifeBack/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type workoutRepository interface {
	List(ctx context.Context, filter repository.WorkoutListFilter) ([]models.Workout, int, error)
	GetDetail(ctx context.Context, id int64) (*models.WorkoutDetail, error)
	Create(ctx context.Context, input repository.CreateWorkoutInput) (*models.Workout, error)
	Update(ctx context.Context, id int64, input repository.UpdateWorkoutInput) (*models.Workout, error)
	Delete(ctx context.Context, id int64) error
}

type workoutUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type workoutCategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
}

type WorkoutsHandler struct {
	workoutRepo  workoutRepository
	userRepo     workoutUserRepository
	categoryRepo workoutCategoryRepository
}

func NewWorkoutsHandler(
	workoutRepo workoutRepository,
	userRepo workoutUserRepository,
	categoryRepo workoutCategoryRepository,
) *WorkoutsHandler {
	return &WorkoutsHandler{
		workoutRepo:  workoutRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

type createWorkoutRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"durationMinutes"`
	UserID          *int64  `json:"userId"`
	CategoryID      *int64  `json:"categoryId"`
}

type updateWorkoutRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"durationMinutes"`
	UserID          *int64  `json:"userId"`
	CategoryID      *int64  `json:"categoryId"`
}

func (h *WorkoutsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	workouts, total, err := h.workoutRepo.List(c.Context(), repository.WorkoutListFilter{
		Search:      strings.TrimSpace(c.Query("search")),
		UserID:      parseOptionalID(c.Query("userId")),
		CategoryID:  parseOptionalID(c.Query("categoryId")),
		MinDuration: parseOptionalInt(c.Query("minDuration")),
		MaxDuration: parseOptionalInt(c.Query("maxDuration")),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}

	return c.JSON(fiber.Map{
		"limit":  limit,
		"offset": offset,
		"total":  total,
		"items":  workouts,
	})
}

func (h *WorkoutsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	workout, err := h.workoutRepo.GetDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout"})
	}

	return c.JSON(workout)
}

func (h *WorkoutsHandler) Create(c *fiber.Ctx) error {
	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateCreateWorkout(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if _, err := h.userRepo.GetByID(c.Context(), *req.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify user"})
	}

	if req.CategoryID != nil {
		if _, err := h.categoryRepo.GetByID(c.Context(), *req.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "categoryId does not exist"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify category"})
		}
	}

	workout, err := h.workoutRepo.Create(c.Context(), repository.CreateWorkoutInput{
		Title:           strings.TrimSpace(*req.Title),
		Description:     trimmed(req.Description),
		DurationMinutes: *req.DurationMinutes,
		UserID:          *req.UserID,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId or categoryId reference"})
			case "23514":
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "durationMinutes cannot be negative"})
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout"})
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (h *WorkoutsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req updateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateUpdateWorkout(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if req.UserID != nil {
		if _, err := h.userRepo.GetByID(c.Context(), *req.UserID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId does not exist"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify user"})
		}
	}
	if req.CategoryID != nil {
		if _, err := h.categoryRepo.GetByID(c.Context(), *req.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "categoryId does not exist"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify category"})
		}
	}

	workout, err := h.workoutRepo.Update(c.Context(), id, repository.UpdateWorkoutInput{
		Title:           trimmed(req.Title),
		Description:     trimmed(req.Description),
		DurationMinutes: req.DurationMinutes,
		UserID:          req.UserID,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "durationMinutes cannot be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workout"})
	}

	return c.JSON(workout)
}

func (h *WorkoutsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.workoutRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workout"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
