package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	cache           Cache
	cacheTTL        time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	slotsCache Cache,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		cache:           slotsCache,
		cacheTTL:        cacheTTL,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Пробуем отдать ответ из кэша
	cacheKey := cache.SlotsKey(req.Date)
	if cached, ok := uc.cacheGet(ctx, cacheKey); ok {
		uc.logger.Info("GetAvailableSlots: cache hit for %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, AvailableSlots: cached}, nil
	}

	// 3. Получаем настройки расписания
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: schedule settings not configured")
			return nil, ErrSettingsNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Нерабочий день - возвращаем пустой список, это не ошибка
	if !settings.IsWorkingDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is not a working day", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, AvailableSlots: []types.TimeString{}}, nil
	}

	// 5. Генерируем все слоты рабочего дня
	slots := generateTimeSlots(settings)

	// 6. Получаем активные записи на дату (отменённые не занимают слоты)
	filter := domain.AppointmentsFilter{Date: &req.Date}
	appointments, err := uc.appointmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Убираем занятые слоты
	available := filterBookedSlots(slots, settings.SessionDurationMinutes, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	// 8. Кэшируем результат
	uc.cacheSet(ctx, cacheKey, available)

	return &Response{Date: req.Date, AvailableSlots: available}, nil
}

// cacheGet читает список слотов из кэша
// Ошибки кэша не фатальны - при любой проблеме идём в БД
func (uc *UseCase) cacheGet(ctx context.Context, key string) ([]types.TimeString, bool) {
	data, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: cache get failed: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var slots []types.TimeString
	if err := json.Unmarshal(data, &slots); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache entry corrupted: %v", err)
		return nil, false
	}

	return slots, true
}

func (uc *UseCase) cacheSet(ctx context.Context, key string, slots []types.TimeString) {
	if uc.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache set failed: %v", err)
	}
}
