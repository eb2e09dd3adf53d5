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

type categoryRepository interface {
	Create(ctx context.Context, name string, description *string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context, filter repository.CategoryListFilter) ([]models.CategoryWithCount, int, error)
	Update(ctx context.Context, id int64, name string, description *string, setDescription bool) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryWorkoutRepository interface {
	ListByCategoryID(ctx context.Context, categoryID int64) ([]models.WorkoutWithUser, error)
}

type CategoriesHandler struct {
	categoryRepo categoryRepository
	workoutRepo  categoryWorkoutRepository
}

func NewCategoriesHandler(categoryRepo categoryRepository, workoutRepo categoryWorkoutRepository) *CategoriesHandler {
	return &CategoriesHandler{categoryRepo: categoryRepo, workoutRepo: workoutRepo}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	categories, total, err := h.categoryRepo.List(c.Context(), repository.CategoryListFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}

	return c.JSON(fiber.Map{
		"limit":  limit,
		"offset": offset,
		"total":  total,
		"items":  categories,
	})
}

func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	category, err := h.categoryRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch category"})
	}

	workouts, err := h.workoutRepo.ListByCategoryID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch category workouts"})
	}

	return c.JSON(models.CategoryDetail{Category: *category, Workouts: workouts})
}

func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == nil || isBlank(*req.Name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	var description *string
	if req.Description != nil && !isBlank(*req.Description) {
		description = trimmed(req.Description)
	}

	category, err := h.categoryRepo.Create(c.Context(), strings.TrimSpace(*req.Name), description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == nil || isBlank(*req.Name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	// A present-but-blank description clears the column.
	setDescription := req.Description != nil
	var description *string
	if setDescription && !isBlank(*req.Description) {
		description = trimmed(req.Description)
	}

	category, err := h.categoryRepo.Update(c.Context(), id, strings.TrimSpace(*req.Name), description, setDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update category"})
	}

	return c.JSON(category)
}

func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.categoryRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
