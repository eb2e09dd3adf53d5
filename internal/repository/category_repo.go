package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/jackc/pgx/v5"
)

type CategoryListFilter struct {
	Search string
	Limit  int
	Offset int
}

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name string, description *string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`
	var category models.Category
	err := r.db.QueryRow(ctx, query, name, description).
		Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		WHERE id = $1
	`
	var category models.Category
	err := r.db.QueryRow(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns categories ordered by name, each with its workout count.
func (r *CategoryRepository) List(ctx context.Context, filter CategoryListFilter) ([]models.CategoryWithCount, int, error) {
	args := []any{}
	whereClause := ""
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		whereClause = "WHERE c.name ILIKE $1"
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM categories c %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.description, COUNT(w.id)
		FROM categories c
		LEFT JOIN workouts w ON w.category_id = c.id
		%s
		GROUP BY c.id, c.name, c.description
		ORDER BY c.name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]models.CategoryWithCount, 0)
	for rows.Next() {
		var category models.CategoryWithCount
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.WorkoutCount); err != nil {
			return nil, 0, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, name string, description *string, setDescription bool) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2
		RETURNING id, name, description
	`
	args := []any{name, id}
	if setDescription {
		query = `
			UPDATE categories
			SET name = $1, description = $2
			WHERE id = $3
			RETURNING id, name, description
		`
		args = []any{name, description, id}
	}

	var category models.Category
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CategoryRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TopByWorkoutCount ranks categories by how many workouts reference them.
// Categories with no workouts still qualify; ties keep store order.
func (r *CategoryRepository) TopByWorkoutCount(ctx context.Context, limit int) ([]models.TopCategory, error) {
	query := `
		SELECT c.id, c.name, COUNT(w.id)
		FROM categories c
		LEFT JOIN workouts w ON w.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY COUNT(w.id) DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := make([]models.TopCategory, 0, limit)
	for rows.Next() {
		var category models.TopCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.WorkoutCount); err != nil {
			return nil, err
		}
		top = append(top, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return top, nil
}

// NamesByIDs resolves category names for the given ids; ids that no longer
// exist are simply absent from the result.
func (r *CategoryRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
