package services

import (
	"context"
	"math"
	"time"

	"github.com/fitlife-app/FitLifeBack/internal/models"
)

const (
	topCategoryCount    = 5
	uncategorizedLabel  = "Uncategorized"
	unknownCategoryName = "Unknown"
)

type statsUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	CountAll(ctx context.Context) (int, error)
}

type statsWorkoutRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Workout, error)
	CountAll(ctx context.Context) (int, error)
	AverageDuration(ctx context.Context) (float64, error)
}

type statsCategoryRepository interface {
	CountAll(ctx context.Context) (int, error)
	TopByWorkoutCount(ctx context.Context, limit int) ([]models.TopCategory, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

type StatsService struct {
	userRepo     statsUserRepository
	workoutRepo  statsWorkoutRepository
	categoryRepo statsCategoryRepository
	now          func() time.Time
}

func NewStatsService(
	userRepo statsUserRepository,
	workoutRepo statsWorkoutRepository,
	categoryRepo statsCategoryRepository,
) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		workoutRepo:  workoutRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

func (s *StatsService) Overview(ctx context.Context) (*models.OverviewStats, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalWorkouts, err := s.workoutRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalCategories, err := s.categoryRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	averageDuration, err := s.workoutRepo.AverageDuration(ctx)
	if err != nil {
		return nil, err
	}
	topCategories, err := s.categoryRepo.TopByWorkoutCount(ctx, topCategoryCount)
	if err != nil {
		return nil, err
	}

	return &models.OverviewStats{
		TotalUsers:      totalUsers,
		TotalWorkouts:   totalWorkouts,
		TotalCategories: totalCategories,
		AverageDuration: averageDuration,
		TopCategories:   topCategories,
	}, nil
}

// UserStats aggregates one user's workouts: totals, rounded mean duration,
// trailing-7-day count, and a per-category breakdown in first-seen order.
// A user with no workouts yields zero counts, never an error.
func (s *StatsService) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{
		UserID:        userID,
		TotalWorkouts: len(workouts),
		ByCategory:    []models.CategoryStats{},
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)

	type categoryAgg struct {
		categoryID *int64
		count      int
		minutes    int
	}
	groups := make(map[int64]*categoryAgg)
	order := make([]*categoryAgg, 0)
	var uncategorized *categoryAgg

	for _, workout := range workouts {
		stats.TotalMinutes += workout.DurationMinutes

		if !workout.CreatedAt.Before(weekAgo) && !workout.CreatedAt.After(now) {
			stats.ThisWeek++
		}

		var agg *categoryAgg
		if workout.CategoryID == nil {
			if uncategorized == nil {
				uncategorized = &categoryAgg{}
				order = append(order, uncategorized)
			}
			agg = uncategorized
		} else {
			agg = groups[*workout.CategoryID]
			if agg == nil {
				id := *workout.CategoryID
				agg = &categoryAgg{categoryID: &id}
				groups[id] = agg
				order = append(order, agg)
			}
		}
		agg.count++
		agg.minutes += workout.DurationMinutes
	}

	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = int(math.Round(float64(stats.TotalMinutes) / float64(stats.TotalWorkouts)))
	}

	categoryIDs := make([]int64, 0, len(groups))
	for id := range groups {
		categoryIDs = append(categoryIDs, id)
	}
	names, err := s.categoryRepo.NamesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	for _, agg := range order {
		label := uncategorizedLabel
		if agg.categoryID != nil {
			// The category row may have been deleted since the workout
			// was tagged; label it instead of failing.
			label = unknownCategoryName
			if name, ok := names[*agg.categoryID]; ok {
				label = name
			}
		}
		stats.ByCategory = append(stats.ByCategory, models.CategoryStats{
			Category:     label,
			Count:        agg.count,
			TotalMinutes: agg.minutes,
		})
	}

	return stats, nil
}
