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

type userRepository interface {
	Create(ctx context.Context, input repository.CreateUserInput) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter repository.UserListFilter) ([]models.User, int, error)
	Update(ctx context.Context, id int64, input repository.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userWorkoutRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Workout, error)
}

type UsersHandler struct {
	userRepo    userRepository
	workoutRepo userWorkoutRepository
}

func NewUsersHandler(userRepo userRepository, workoutRepo userWorkoutRepository) *UsersHandler {
	return &UsersHandler{userRepo: userRepo, workoutRepo: workoutRepo}
}

type createUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	users, total, err := h.userRepo.List(c.Context(), repository.UserListFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"limit":  limit,
		"offset": offset,
		"total":  total,
		"items":  users,
	})
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	workouts, err := h.workoutRepo.ListByUserID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user workouts"})
	}

	return c.JSON(models.UserDetail{User: *user, Workouts: workouts})
}

func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateCreateUser(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.userRepo.Create(c.Context(), repository.CreateUserInput{
		FirstName: strings.TrimSpace(*req.FirstName),
		LastName:  strings.TrimSpace(*req.LastName),
		Email:     strings.TrimSpace(*req.Email),
		Age:       *req.Age,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Could not create user (maybe email already exists)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateUpdateUser(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.userRepo.Update(c.Context(), id, repository.UpdateUserInput{
		FirstName: trimmed(req.FirstName),
		LastName:  trimmed(req.LastName),
		Email:     trimmed(req.Email),
		Age:       req.Age,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Could not update user (maybe email already exists)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.userRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User still has workouts"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	t := strings.TrimSpace(*value)
	return &t
}
