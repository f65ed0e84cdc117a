package postgresql

import (
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/sysconfig"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type configRepository struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) sysconfig.ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetAll(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT config_key, config_value FROM system_config`)
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		settings[key] = value
	}

	return settings, nil
}

func (r *configRepository) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var value string
	err := q.QueryRow(ctx, `SELECT config_value FROM system_config WHERE config_key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", sysconfig.ErrConfigKeyNotFound
		}
		return "", fmt.Errorf("failed to get config value: %w", err)
	}

	return value, nil
}

func (r *configRepository) Set(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_config (id, config_key, config_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (config_key)
		DO UPDATE SET config_value = EXCLUDED.config_value, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, uuid.New().String(), key, value); err != nil {
		return fmt.Errorf("failed to set config value: %w", err)
	}

	return nil
}
