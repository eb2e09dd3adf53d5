package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitlife-app/FitLifeBack/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserListFilter struct {
	Search string
	Limit  int
	Offset int
}

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, email, age, created_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, input.FirstName, input.LastName, input.Email, input.Age).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Age, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, age, created_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Age, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, filter UserListFilter) ([]models.User, int, error) {
	args := []any{}
	whereClause := ""
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		whereClause = "WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1"
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, age, created_at
		FROM users
		%s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Age, &user.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			email = COALESCE($3, email),
			age = COALESCE($4, age)
		WHERE id = $5
		RETURNING id, first_name, last_name, email, age, created_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, input.FirstName, input.LastName, input.Email, input.Age, id).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Age, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
