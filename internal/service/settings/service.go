package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/KaraBox-BookingService/internal/service/settings/models"
)

// Service сервис админ-операций над настройками бронирования
type Service struct {
	settingsRepo SettingsRepository
	cache        AvailabilityCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
// cache может быть nil, тогда инвалидация пропускается
func NewService(settingsRepo SettingsRepository, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Get возвращает текущие настройки бронирования и тарифы
// Ненастроенные тарифы заменяются дефолтными, отсутствие настроек
// расписания - это ошибка конфигурации, о ней сообщаем явно
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("GetSettings: fetching booking settings")

	settings, err := s.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: booking settings are not configured")
			settings = defaultSettings()
		} else {
			s.logger.Error("GetSettings: repository error: %v", err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
	}

	rates, err := s.settingsRepo.GetBaseRates(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetSettings: failed to get rates: %v", err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		rates = &domain.BaseRates{
			PerHour:   domain.DefaultPerHourRate,
			PerPerson: domain.DefaultPerPersonRate,
		}
	}

	return models.FromDomain(settings, rates), nil
}

// Update полностью заменяет настройки бронирования и тарифы
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating booking settings, testMode=%t", req.IsTestMode)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}

	settings := req.ToDomainSettings()
	rates := req.ToDomainRates()

	if err := s.settingsRepo.UpsertBookingSettings(ctx, settings); err != nil {
		s.logger.Error("UpdateSettings: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.settingsRepo.UpsertBaseRates(ctx, rates); err != nil {
		s.logger.Error("UpdateSettings: failed to save rates: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Закэшированная выдача считалась по старому расписанию (best effort)
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.logger.Warn("UpdateSettings: failed to invalidate availability cache: %v", err)
		}
	}

	s.logger.Info("UpdateSettings: settings updated")
	return models.FromDomain(settings, rates), nil
}

// defaultSettings пустое расписание: все дни закрыты до настройки админом
func defaultSettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		OpeningHours: map[string]domain.DayHours{},
		BookingWindow: domain.BookingWindow{
			StartDays: domain.DefaultWindowStartDays,
			EndDays:   domain.DefaultWindowEndDays,
		},
		ExcludedDates: []string{},
	}
}
