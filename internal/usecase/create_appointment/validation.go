package create_appointment

import (
	"fmt"
	"strings"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Порядок проверок фиксирован: сначала обязательные поля, затем адрес для
// выездных записей; проверки расписания выполняются позже, внутри транзакции
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		req.Kind == "" ||
		req.Start.IsZero() {
		return ErrMissingFields
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Kind == domain.KindAccommodate &&
		(req.Address == nil || strings.TrimSpace(*req.Address) == "") {
		return ErrAddressRequired
	}

	if req.Sessions < domain.MinSessions {
		return fmt.Errorf("%w: sessions must be >= %d", ErrInvalidInput, domain.MinSessions)
	}

	if req.ExtraInfo != nil && len(*req.ExtraInfo) > domain.MaxExtraInfoLength {
		return fmt.Errorf("%w: extra info is too long", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет запись против настроек расписания
// День должен быть рабочим, а время начала - в пределах [startTime, endTime)
// Проверяется только время начала: последняя сессия может заканчиваться
// после конца рабочего дня, как и последний слот дня
func validateSchedule(settings *domain.ScheduleSettings, req *Request, startMin int) error {
	if !settings.IsWorkingDay(req.Start) {
		return ErrNotWorkingDay
	}

	if startMin < settings.StartTime.Minutes() || startMin >= settings.EndTime.Minutes() {
		return ErrOutsideWorkingHours
	}

	return nil
}

// hasConflict проверяет пересечение интервала [startMin, endMin) с активными записями
// Отменённые записи слот не занимают; завершённые - занимают
func hasConflict(appointments []*domain.Appointment, startMin, endMin int) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Overlaps(startMin, endMin) {
			return true
		}
	}
	return false
}
