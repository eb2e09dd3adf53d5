package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/fitlife-app/FitLifeBack/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubCategoryRepo struct {
	listResult  []models.CategoryWithCount
	listTotal   int
	category    *models.Category
	getErr      error
	created     *models.Category
	createErr   error
	lastName    string
	lastDesc    *string
	updated     *models.Category
	updateErr   error
	lastSetDesc bool
	deleteErr   error
}

func (s *stubCategoryRepo) Create(_ context.Context, name string, description *string) (*models.Category, error) {
	s.lastName = name
	s.lastDesc = description
	return s.created, s.createErr
}

func (s *stubCategoryRepo) GetByID(_ context.Context, _ int64) (*models.Category, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.category, nil
}

func (s *stubCategoryRepo) List(_ context.Context, _ repository.CategoryListFilter) ([]models.CategoryWithCount, int, error) {
	return s.listResult, s.listTotal, nil
}

func (s *stubCategoryRepo) Update(_ context.Context, _ int64, name string, description *string, setDescription bool) (*models.Category, error) {
	s.lastName = name
	s.lastDesc = description
	s.lastSetDesc = setDescription
	return s.updated, s.updateErr
}

func (s *stubCategoryRepo) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func newCategoriesApp(repo *stubCategoryRepo, workouts *stubWorkoutRepo) *fiber.App {
	handler := NewCategoriesHandler(repo, workouts)
	app := fiber.New()
	app.Get("/categories", handler.List)
	app.Get("/categories/:id", handler.Get)
	app.Post("/categories", handler.Create)
	app.Put("/categories/:id", handler.Update)
	app.Delete("/categories/:id", handler.Delete)
	return app
}

func TestListCategoriesIncludesWorkoutCounts(t *testing.T) {
	repo := &stubCategoryRepo{
		listResult: []models.CategoryWithCount{
			{Category: models.Category{ID: 1, Name: "Cardio"}, WorkoutCount: 4},
		},
		listTotal: 5,
	}
	app := newCategoriesApp(repo, &stubWorkoutRepo{})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Total int                        `json:"total"`
		Items []models.CategoryWithCount `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Total != 5 || len(body.Items) != 1 || body.Items[0].WorkoutCount != 4 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestGetCategoryEmbedsWorkoutsWithUsers(t *testing.T) {
	repo := &stubCategoryRepo{category: &models.Category{ID: 1, Name: "Cardio"}}
	workouts := &stubWorkoutRepo{
		byCategory: []models.WorkoutWithUser{
			{
				Workout: models.Workout{ID: 2, Title: "Morning Run", UserID: 1},
				User:    &models.User{ID: 1, FirstName: "Alex"},
			},
		},
	}
	app := newCategoriesApp(repo, workouts)

	req := httptest.NewRequest(http.MethodGet, "/categories/1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.CategoryDetail
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Name != "Cardio" || len(body.Workouts) != 1 || body.Workouts[0].User == nil {
		t.Fatalf("unexpected category detail: %+v", body)
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	app := newCategoriesApp(&stubCategoryRepo{}, &stubWorkoutRepo{})

	payload, _ := json.Marshal(map[string]any{"description": "whatever"})
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "name is required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := &stubCategoryRepo{createErr: &pgconn.PgError{Code: "23505"}}
	app := newCategoriesApp(repo, &stubWorkoutRepo{})

	payload, _ := json.Marshal(map[string]any{"name": "Cardio"})
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "Category name already exists" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestUpdateCategoryClearsDescriptionWhenBlank(t *testing.T) {
	repo := &stubCategoryRepo{updated: &models.Category{ID: 1, Name: "Cardio"}}
	app := newCategoriesApp(repo, &stubWorkoutRepo{})

	payload, _ := json.Marshal(map[string]any{"name": "Cardio", "description": "   "})
	req := httptest.NewRequest(http.MethodPut, "/categories/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !repo.lastSetDesc || repo.lastDesc != nil {
		t.Fatalf("expected description cleared, got set=%v desc=%v", repo.lastSetDesc, repo.lastDesc)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	app := newCategoriesApp(&stubCategoryRepo{deleteErr: pgx.ErrNoRows}, &stubWorkoutRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/categories/9", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
