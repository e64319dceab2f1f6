package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type SettingsRepository struct {
	db DB
}

func NewSettingsRepository(db DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `
		SELECT setting_key, COALESCE(setting_value, ''), COALESCE(description, ''), updated_at
		FROM system_settings
		ORDER BY setting_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	err := r.db.QueryRow(ctx, `
		SELECT setting_key, COALESCE(setting_value, ''), COALESCE(description, ''), updated_at
		FROM system_settings
		WHERE setting_key = $1
	`, key).Scan(&s.Key, &s.Value, &s.Description, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return &s, nil
}

// Set updates an existing setting. Unknown keys are rejected rather
// than upserted; the settings catalogue is fixed by migration.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE system_settings SET setting_value = $1, updated_at = NOW() WHERE setting_key = $2
	`, value, key)
	if err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrSettingNotFound
	}

	return nil
}
