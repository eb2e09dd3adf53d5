package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/jackc/pgx/v5"
)

// Sort keys accepted by GET /workouts. Anything else falls back to id.
var workoutSortColumns = map[string]string{
	"id":              "id",
	"title":           "title",
	"durationMinutes": "duration_minutes",
	"createdAt":       "created_at",
}

type WorkoutListFilter struct {
	Search      string
	UserID      *int64
	CategoryID  *int64
	MinDuration *int
	MaxDuration *int
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}

type CreateWorkoutInput struct {
	Title           string
	Description     *string
	DurationMinutes int
	UserID          int64
	CategoryID      *int64
}

type UpdateWorkoutInput struct {
	Title           *string
	Description     *string
	DurationMinutes *int
	UserID          *int64
	CategoryID      *int64
}

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func buildWorkoutWhere(filter WorkoutListFilter) ([]string, []any) {
	whereParts := []string{}
	args := []any{}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		whereParts = append(whereParts, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		whereParts = append(whereParts, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		whereParts = append(whereParts, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.MinDuration != nil {
		args = append(args, *filter.MinDuration)
		whereParts = append(whereParts, fmt.Sprintf("duration_minutes >= $%d", len(args)))
	}
	if filter.MaxDuration != nil {
		args = append(args, *filter.MaxDuration)
		whereParts = append(whereParts, fmt.Sprintf("duration_minutes <= $%d", len(args)))
	}

	return whereParts, args
}

func workoutOrderBy(sortBy, sortOrder string) string {
	column, ok := workoutSortColumns[sortBy]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// List returns one page of workouts matching the filter plus the total
// match count ignoring pagination.
func (r *WorkoutRepository) List(ctx context.Context, filter WorkoutListFilter) ([]models.Workout, int, error) {
	whereParts, args := buildWorkoutWhere(filter)
	whereClause := ""
	if len(whereParts) > 0 {
		whereClause = "WHERE " + strings.Join(whereParts, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM workouts %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, duration_minutes, user_id, category_id, created_at
		FROM workouts
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, workoutOrderBy(filter.SortBy, filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	query := `
		SELECT id, title, description, duration_minutes, user_id, category_id, created_at
		FROM workouts
		WHERE id = $1
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.Title,
		&workout.Description,
		&workout.DurationMinutes,
		&workout.UserID,
		&workout.CategoryID,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// GetDetail fetches a workout with its user and optional category embedded.
func (r *WorkoutRepository) GetDetail(ctx context.Context, id int64) (*models.WorkoutDetail, error) {
	query := `
		SELECT w.id, w.title, w.description, w.duration_minutes, w.user_id, w.category_id, w.created_at,
			   u.id, u.first_name, u.last_name, u.email, u.age, u.created_at,
			   c.id, c.name, c.description
		FROM workouts w
		JOIN users u ON u.id = w.user_id
		LEFT JOIN categories c ON c.id = w.category_id
		WHERE w.id = $1
	`
	var detail models.WorkoutDetail
	var user models.User
	var categoryID *int64
	var categoryName *string
	var categoryDescription *string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.DurationMinutes,
		&detail.UserID,
		&detail.CategoryID,
		&detail.CreatedAt,
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Age,
		&user.CreatedAt,
		&categoryID,
		&categoryName,
		&categoryDescription,
	)
	if err != nil {
		return nil, err
	}

	detail.User = &user
	if categoryID != nil {
		detail.Category = &models.Category{
			ID:          *categoryID,
			Name:        *categoryName,
			Description: categoryDescription,
		}
	}
	return &detail, nil
}

func (r *WorkoutRepository) Create(ctx context.Context, input CreateWorkoutInput) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (title, description, duration_minutes, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, duration_minutes, user_id, category_id, created_at
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query,
		input.Title,
		input.Description,
		input.DurationMinutes,
		input.UserID,
		input.CategoryID,
	).Scan(
		&workout.ID,
		&workout.Title,
		&workout.Description,
		&workout.DurationMinutes,
		&workout.UserID,
		&workout.CategoryID,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, id int64, input UpdateWorkoutInput) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			duration_minutes = COALESCE($3, duration_minutes),
			user_id = COALESCE($4, user_id),
			category_id = COALESCE($5, category_id)
		WHERE id = $6
		RETURNING id, title, description, duration_minutes, user_id, category_id, created_at
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query,
		input.Title,
		input.Description,
		input.DurationMinutes,
		input.UserID,
		input.CategoryID,
		id,
	).Scan(
		&workout.ID,
		&workout.Title,
		&workout.Description,
		&workout.DurationMinutes,
		&workout.UserID,
		&workout.CategoryID,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *WorkoutRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Workout, error) {
	query := `
		SELECT id, title, description, duration_minutes, user_id, category_id, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func (r *WorkoutRepository) ListByCategoryID(ctx context.Context, categoryID int64) ([]models.WorkoutWithUser, error) {
	query := `
		SELECT w.id, w.title, w.description, w.duration_minutes, w.user_id, w.category_id, w.created_at,
			   u.id, u.first_name, u.last_name, u.email, u.age, u.created_at
		FROM workouts w
		JOIN users u ON u.id = w.user_id
		WHERE w.category_id = $1
		ORDER BY w.id ASC
	`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.WorkoutWithUser, 0)
	for rows.Next() {
		var workout models.WorkoutWithUser
		var user models.User
		if err := rows.Scan(
			&workout.ID,
			&workout.Title,
			&workout.Description,
			&workout.DurationMinutes,
			&workout.UserID,
			&workout.CategoryID,
			&workout.CreatedAt,
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Age,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		workout.User = &user
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *WorkoutRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// AverageDuration returns the mean duration across all workouts, 0 when
// there are none.
func (r *WorkoutRepository) AverageDuration(ctx context.Context) (float64, error) {
	var avg *float64
	if err := r.db.QueryRow(ctx, `SELECT AVG(duration_minutes) FROM workouts`).Scan(&avg); err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func scanWorkouts(rows pgx.Rows) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.Title,
			&workout.Description,
			&workout.DurationMinutes,
			&workout.UserID,
			&workout.CategoryID,
			&workout.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}
