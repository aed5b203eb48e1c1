package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	"github.com/Hayzedd-A/appointment-booking/internal/service/settings/models"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// Service сервис для работы с настройками расписания
type Service struct {
	settingsRepo SettingsRepository
	cache        Cache
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, slotsCache Cache, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		cache:        slotsCache,
		logger:       logger,
	}
}

// Get возвращает настройки расписания
// Если настроек ещё нет, создает их с дефолтными значениями (пн-пт, 09:00-17:00, 30 минут)
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return models.FromDomainSettings(current), nil
	}

	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	// Первое чтение - создаем настройки с дефолтами
	s.logger.Info("Get: no settings found, creating defaults")

	created, err := s.settingsRepo.Create(ctx, domain.DefaultScheduleSettings())
	if err != nil {
		s.logger.Error("Get: failed to create default settings: %v", err)
		return nil, fmt.Errorf("%w: Get - failed to create defaults: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(created), nil
}

// Update целиком заменяет настройки расписания
// Если настроек ещё нет, создает строку с переданными значениями
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings, days=%v, hours=%s-%s, duration=%d",
		req.WorkingDays, req.StartTime, req.EndTime, req.SessionDuration)

	updated, err := s.toDomainSettings(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Настроек ещё нет - создаем с переданными значениями
		created, err := s.settingsRepo.Create(ctx, updated)
		if err != nil {
			s.logger.Error("Update: failed to create settings: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to create: %v", ErrInternal, err)
		}

		s.invalidateSlotsCache(ctx)
		s.logger.Info("Update: settings created")
		return models.FromDomainSettings(created), nil
	}

	updated.ID = current.ID

	saved, err := s.settingsRepo.Update(ctx, updated)
	if err != nil {
		s.logger.Error("Update: failed to update settings: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to update: %v", ErrInternal, err)
	}

	s.invalidateSlotsCache(ctx)
	s.logger.Info("Update: settings updated")
	return models.FromDomainSettings(saved), nil
}

// invalidateSlotsCache сбрасывает закэшированные слоты на всех датах
// Новые рабочие часы или длительность сессии меняют сетку слотов целиком
func (s *Service) invalidateSlotsCache(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, cache.SlotsKeyPrefix); err != nil {
		s.logger.Warn("Update: failed to invalidate slots cache: %v", err)
	}
}

// toDomainSettings валидирует запрос и собирает доменную модель
// Все поля обязательны; дни недели нормализуются и дедуплицируются
func (s *Service) toDomainSettings(req *models.UpdateSettingsRequest) (*domain.ScheduleSettings, error) {
	if len(req.WorkingDays) == 0 || req.StartTime == "" || req.EndTime == "" || req.SessionDuration == 0 {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	days := make([]string, 0, len(req.WorkingDays))
	seen := make(map[string]bool, len(req.WorkingDays))
	for _, day := range req.WorkingDays {
		if !domain.IsValidWeekdayName(day) {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if req.SessionDuration < domain.MinSessionDurationMinutes ||
		req.SessionDuration > domain.MaxSessionDurationMinutes {
		return nil, fmt.Errorf("%w: session duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSessionDurationMinutes, domain.MaxSessionDurationMinutes)
	}

	return &domain.ScheduleSettings{
		WorkingDays:            days,
		StartTime:              startTime,
		EndTime:                endTime,
		SessionDurationMinutes: req.SessionDuration,
	}, nil
}
