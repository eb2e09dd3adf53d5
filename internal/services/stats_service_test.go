package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/jackc/pgx/v5"
)

type stubStatsUserRepo struct {
	user     *models.User
	getErr   error
	total    int
	countErr error
}

func (s *stubStatsUserRepo) GetByID(_ context.Context, _ int64) (*models.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubStatsUserRepo) CountAll(_ context.Context) (int, error) {
	return s.total, s.countErr
}

type stubStatsWorkoutRepo struct {
	workouts []models.Workout
	listErr  error
	total    int
	average  float64
}

func (s *stubStatsWorkoutRepo) ListByUserID(_ context.Context, _ int64) ([]models.Workout, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.workouts, nil
}

func (s *stubStatsWorkoutRepo) CountAll(_ context.Context) (int, error) {
	return s.total, nil
}

func (s *stubStatsWorkoutRepo) AverageDuration(_ context.Context) (float64, error) {
	return s.average, nil
}

type stubStatsCategoryRepo struct {
	total   int
	top     []models.TopCategory
	names   map[int64]string
	queried []int64
}

func (s *stubStatsCategoryRepo) CountAll(_ context.Context) (int, error) {
	return s.total, nil
}

func (s *stubStatsCategoryRepo) TopByWorkoutCount(_ context.Context, _ int) ([]models.TopCategory, error) {
	return s.top, nil
}

func (s *stubStatsCategoryRepo) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	s.queried = ids
	return s.names, nil
}

func catPtr(id int64) *int64 { return &id }

func TestOverviewComposesAggregates(t *testing.T) {
	service := NewStatsService(
		&stubStatsUserRepo{total: 4},
		&stubStatsWorkoutRepo{total: 15, average: 45.5},
		&stubStatsCategoryRepo{
			total: 5,
			top: []models.TopCategory{
				{ID: 1, Name: "Cardio", WorkoutCount: 5},
				{ID: 2, Name: "Strength Training", WorkoutCount: 3},
			},
		},
	)

	overview, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalUsers != 4 || overview.TotalWorkouts != 15 || overview.TotalCategories != 5 {
		t.Fatalf("unexpected totals: %+v", overview)
	}
	if overview.AverageDuration != 45.5 {
		t.Fatalf("expected average 45.5, got %v", overview.AverageDuration)
	}
	if len(overview.TopCategories) != 2 || overview.TopCategories[0].Name != "Cardio" {
		t.Fatalf("unexpected top categories: %+v", overview.TopCategories)
	}
}

func TestUserStatsAggregatesByCategory(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -30)

	workouts := []models.Workout{
		{ID: 1, DurationMinutes: 30, CategoryID: catPtr(1), CreatedAt: old},
		{ID: 2, DurationMinutes: 40, CategoryID: catPtr(1), CreatedAt: old},
		{ID: 3, DurationMinutes: 60, CategoryID: catPtr(2), CreatedAt: old},
		{ID: 4, DurationMinutes: 20, CategoryID: nil, CreatedAt: old},
	}

	categoryRepo := &stubStatsCategoryRepo{names: map[int64]string{1: "Cardio"}}
	service := NewStatsService(
		&stubStatsUserRepo{user: &models.User{ID: 1}},
		&stubStatsWorkoutRepo{workouts: workouts},
		categoryRepo,
	)
	service.now = func() time.Time { return now }

	stats, err := service.UserStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}

	if stats.TotalWorkouts != 4 || stats.TotalMinutes != 150 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	// 150/4 = 37.5 rounds to 38
	if stats.AverageDuration != 38 {
		t.Fatalf("expected average 38, got %d", stats.AverageDuration)
	}
	if stats.ThisWeek != 0 {
		t.Fatalf("expected 0 workouts this week, got %d", stats.ThisWeek)
	}

	if len(stats.ByCategory) != 3 {
		t.Fatalf("expected 3 breakdown groups, got %+v", stats.ByCategory)
	}
	// Name resolution batches only the real category ids, once each.
	if len(categoryRepo.queried) != 2 {
		t.Fatalf("expected 2 ids in name lookup, got %v", categoryRepo.queried)
	}
	seen := map[int64]bool{}
	for _, id := range categoryRepo.queried {
		seen[id] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("expected ids 1 and 2 in name lookup, got %v", categoryRepo.queried)
	}
	cardio := stats.ByCategory[0]
	if cardio.Category != "Cardio" || cardio.Count != 2 || cardio.TotalMinutes != 70 {
		t.Fatalf("unexpected cardio group: %+v", cardio)
	}
	// category 2 was deleted after the workout was tagged
	if stats.ByCategory[1].Category != "Unknown" || stats.ByCategory[1].Count != 1 {
		t.Fatalf("unexpected unknown group: %+v", stats.ByCategory[1])
	}
	if stats.ByCategory[2].Category != "Uncategorized" || stats.ByCategory[2].TotalMinutes != 20 {
		t.Fatalf("unexpected uncategorized group: %+v", stats.ByCategory[2])
	}
}

func TestUserStatsTrailingWeekWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	workouts := []models.Workout{
		{ID: 1, DurationMinutes: 30, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 2, DurationMinutes: 30, CreatedAt: now.AddDate(0, 0, -7)}, // boundary, inclusive
		{ID: 3, DurationMinutes: 30, CreatedAt: now.AddDate(0, 0, -8)},
		{ID: 4, DurationMinutes: 30, CreatedAt: now.Add(time.Hour)}, // future, excluded
	}

	service := NewStatsService(
		&stubStatsUserRepo{user: &models.User{ID: 1}},
		&stubStatsWorkoutRepo{workouts: workouts},
		&stubStatsCategoryRepo{names: map[int64]string{}},
	)
	service.now = func() time.Time { return now }

	stats, err := service.UserStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.ThisWeek != 2 {
		t.Fatalf("expected 2 workouts in trailing week, got %d", stats.ThisWeek)
	}
}

func TestUserStatsEmptyWorkoutSet(t *testing.T) {
	service := NewStatsService(
		&stubStatsUserRepo{user: &models.User{ID: 1}},
		&stubStatsWorkoutRepo{},
		&stubStatsCategoryRepo{names: map[int64]string{}},
	)

	stats, err := service.UserStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.TotalWorkouts != 0 || stats.TotalMinutes != 0 || stats.AverageDuration != 0 || stats.ThisWeek != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
	if stats.ByCategory == nil || len(stats.ByCategory) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", stats.ByCategory)
	}
}

func TestUserStatsUserNotFound(t *testing.T) {
	service := NewStatsService(
		&stubStatsUserRepo{getErr: pgx.ErrNoRows},
		&stubStatsWorkoutRepo{},
		&stubStatsCategoryRepo{},
	)

	_, err := service.UserStats(context.Background(), 99)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}
