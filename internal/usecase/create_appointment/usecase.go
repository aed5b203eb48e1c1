package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	cache           Cache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	slotsCache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		cache:           slotsCache,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы два одновременных запроса не заняли один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: name=%q, kind=%s, start=%s, sessions=%d",
		req.Name, req.Kind, req.Start.Format(time.RFC3339), req.Sessions)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбиваем момент начала на дату и время суток
	date := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())
	startTime := types.NewTimeString(req.Start)
	startMin := startTime.Minutes()

	var result *domain.Appointment

	// 3. Проверки расписания, конфликтов и вставка - в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем настройки расписания
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateAppointment: schedule settings not configured")
				return ErrSettingsNotConfigured
			}
			uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 3.2. Рабочий день и рабочие часы
		if err := validateSchedule(settings, req, startMin); err != nil {
			uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
			return err
		}

		// 3.3. Длительность фиксируется на момент создания
		duration := req.Sessions * settings.SessionDurationMinutes
		endMin := startMin + duration

		// 3.4. Активные записи на эту дату с блокировкой строк (FOR UPDATE)
		appointments, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{Date: &date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.5. Проверяем конфликт интервалов
		if hasConflict(appointments, startMin, endMin) {
			uc.logger.Warn("CreateAppointment: slot conflict at %s on %s",
				startTime, date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 3.6. Создаем запись со статусом pending
		// Адрес сохраняется только для выездных записей
		var address *string
		if req.Kind == domain.KindAccommodate {
			address = req.Address
		}

		appt := &domain.Appointment{
			Name:            req.Name,
			Phone:           req.Phone,
			Kind:            req.Kind,
			Address:         address,
			ExtraInfo:       req.ExtraInfo,
			Date:            date,
			StartTime:       startTime,
			Sessions:        req.Sessions,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Инвалидируем кэш слотов на эту дату
	if err := uc.cache.Delete(ctx, cache.SlotsKey(date)); err != nil {
		uc.logger.Warn("CreateAppointment: failed to invalidate slots cache: %v", err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return fromDomain(result), nil
}
