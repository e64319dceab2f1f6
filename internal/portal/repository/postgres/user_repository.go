package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

const userColumns = `id, email, phone_number, first_name, last_name, COALESCE(company, ''),
		is_active, registration_date, last_login, created_at, updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_registrations (
			id, email, phone_number, first_name, last_name, company,
			is_active, registration_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, user.ID, user.Email, user.PhoneNumber, user.FirstName, user.LastName,
		user.Company, user.IsActive, user.RegistrationDate, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return translateConstraint(err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_registrations WHERE email = $1 LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_registrations WHERE id = $1 LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetActiveByCredentials matches an active user on email and normalized
// phone number exactly. Both must match; callers do not learn which one
// was wrong.
func (r *UserRepository) GetActiveByCredentials(ctx context.Context, email, phone string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM user_registrations
		WHERE email = $1 AND phone_number = $2 AND is_active = true
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, email, phone))
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE user_registrations SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_registrations ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.FirstName, &u.LastName,
			&u.Company, &u.IsActive, &u.RegistrationDate, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) error {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.Company != nil {
		add("company", *update.Company)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	if len(sets) == 0 {
		return autherror.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE user_registrations SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Stats(ctx context.Context) (*domain.UserStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active = true),
			COUNT(*) FILTER (WHERE last_login IS NOT NULL),
			COUNT(*) FILTER (WHERE last_login >= NOW() - INTERVAL '7 days')
		FROM user_registrations`

	var stats domain.UserStats
	err := r.db.QueryRow(ctx, query).
		Scan(&stats.TotalUsers, &stats.ActiveUsers, &stats.UsersWithLogin, &stats.RecentLogins)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &stats, nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.FirstName, &u.LastName,
		&u.Company, &u.IsActive, &u.RegistrationDate, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
