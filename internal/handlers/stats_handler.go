package handlers

import (
	"context"
	"errors"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type statsProvider interface {
	Overview(ctx context.Context) (*models.OverviewStats, error)
	UserStats(ctx context.Context, userID int64) (*models.UserStats, error)
}

type StatsHandler struct {
	stats statsProvider
}

func NewStatsHandler(stats statsProvider) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}
	return c.JSON(overview)
}

func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	stats, err := h.stats.UserStats(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute user stats"})
	}

	return c.JSON(stats)
}
