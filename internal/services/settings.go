package services

import (
	"context"

	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
)

type CompanySettingsServiceInterface interface {
	GetSettings(ctx context.Context) (*dto.CompanySettingsDTO, error)
	UpdateSettings(ctx context.Context, payload dto.UpdateCompanySettingsDTO) (*dto.CompanySettingsDTO, error)
}

type CompanySettingsService struct {
	settingsRepository repositories.CompanySettingsRepositoryInterface
	logger             *zap.Logger
}

func NewCompanySettingsService(
	settingsRepository repositories.CompanySettingsRepositoryInterface,
	logger *zap.Logger,
) CompanySettingsServiceInterface {
	return &CompanySettingsService{settingsRepository: settingsRepository, logger: logger}
}

func mapSettings(s entities.CompanySettings) dto.CompanySettingsDTO {
	return dto.CompanySettingsDTO{
		ID:                   s.ID,
		CompanyName:          s.CompanyName,
		CNPJ:                 s.CNPJ,
		Email:                s.Email,
		Phone:                s.Phone,
		Address:              s.Address,
		NotificationsEnabled: s.NotificationsEnabled,
		UpdatedAt:            formatTime(s.UpdatedAt),
	}
}

func (s *CompanySettingsService) GetSettings(ctx context.Context) (*dto.CompanySettingsDTO, error) {
	settings, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	result := mapSettings(*settings)
	return &result, nil
}

func (s *CompanySettingsService) UpdateSettings(ctx context.Context, payload dto.UpdateCompanySettingsDTO) (*dto.CompanySettingsDTO, error) {
	current, err := s.settingsRepository.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if payload.CompanyName != nil {
		current.CompanyName = *payload.CompanyName
	}
	if payload.CNPJ != nil {
		current.CNPJ = *payload.CNPJ
	}
	if payload.Email != nil {
		current.Email = *payload.Email
	}
	if payload.Phone != nil {
		current.Phone = *payload.Phone
	}
	if payload.Address != nil {
		current.Address = *payload.Address
	}
	if payload.NotificationsEnabled != nil {
		current.NotificationsEnabled = *payload.NotificationsEnabled
	}

	if err := s.settingsRepository.UpdateSettings(ctx, *current); err != nil {
		s.logger.Error("failed to update company settings", zap.Error(err))
		return nil, err
	}
	return s.GetSettings(ctx)
}
