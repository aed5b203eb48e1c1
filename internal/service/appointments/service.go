package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	apptRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/appointment"
	"github.com/Hayzedd-A/appointment-booking/internal/service/appointments/models"
)

// Service сервис для административных операций с записями
type Service struct {
	appointmentRepo AppointmentRepository
	cache           Cache
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, slotsCache Cache, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		cache:           slotsCache,
		logger:          logger,
	}
}

// List получает все записи для админки, отсортированные по дате и времени начала
// Опционально фильтрует по статусу; с IncludeInactive администратор видит
// полную историю вместе с отменёнными записями
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, status=%v", req.Status)

	filter := domain.AppointmentsFilter{IncludeInactive: req.IncludeInactive}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// UpdateStatus обновляет статус записи и возвращает обновлённую запись
// Переходы между статусами не ограничиваются: администратор может вернуть
// завершённую запись в pending или отменить её
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Перечитываем запись, чтобы вернуть актуальные updated_at
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	// Смена статуса меняет доступность: отмена освобождает слот,
	// возврат из cancelled снова его занимает. Кэш слотов на эту дату устарел
	if err := s.cache.Delete(ctx, cache.SlotsKey(appt.Date)); err != nil {
		s.logger.Warn("UpdateStatus: failed to invalidate slots cache for id=%d: %v", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appt), nil
}
