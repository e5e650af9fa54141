package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
)

const companySettingsTable = "company_settings"

type CompanySettingsRepositoryInterface interface {
	GetSettings(ctx context.Context) (*entities.CompanySettings, error)
	UpdateSettings(ctx context.Context, s entities.CompanySettings) error
}

type CompanySettingsRepository struct {
	storage *pgxpool.Pool
}

func NewCompanySettingsRepository(storage *pgxpool.Pool) CompanySettingsRepositoryInterface {
	return &CompanySettingsRepository{storage: storage}
}

// GetSettings returns the single settings row; the migration seeds it so
// the table is never empty in a healthy installation.
func (r *CompanySettingsRepository) GetSettings(ctx context.Context) (*entities.CompanySettings, error) {
	query := fmt.Sprintf(`
		SELECT id, company_name, cnpj, email, phone, address, notifications_enabled, created_at, updated_at
		FROM %s
		LIMIT 1
	`, companySettingsTable)

	var s entities.CompanySettings
	err := r.storage.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.CNPJ, &s.Email, &s.Phone, &s.Address, &s.NotificationsEnabled,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *CompanySettingsRepository) UpdateSettings(ctx context.Context, s entities.CompanySettings) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET company_name = $1, cnpj = $2, email = $3, phone = $4, address = $5, notifications_enabled = $6, updated_at = CURRENT_TIMESTAMP
        WHERE id = $7
    `, companySettingsTable)

	result, err := r.storage.Exec(ctx, query,
		s.CompanyName, s.CNPJ, s.Email, s.Phone, s.Address, s.NotificationsEnabled, s.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
