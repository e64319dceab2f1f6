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

const adminColumns = `id, username, email, password_hash, role, is_active, last_login, created_at, updated_at`

type AdminRepository struct {
	db DB
}

func NewAdminRepository(db DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (id, username, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.Role,
		admin.IsActive, admin.CreatedAt, admin.UpdatedAt)
	if err != nil {
		return translateConstraint(err)
	}

	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE username = $1 LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1 LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role,
			&a.IsActive, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}

	return admins, rows.Err()
}

func (r *AdminRepository) Update(ctx context.Context, id string, update domain.AdminUpdate) error {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.Role != nil {
		add("role", *update.Role)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	if len(sets) == 0 {
		return autherror.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE admin_users SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrAdminNotFound
	}

	return nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrAdminNotFound
	}

	return nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update admin last login: %w", err)
	}

	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrAdminNotFound
	}

	return nil
}

func (r *AdminRepository) scanOne(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role,
		&a.IsActive, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &a, nil
}
