package get_available_slots

import (
	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты идут от начала рабочего дня с фиксированным шагом sessionDuration,
// пока время начала слота строго меньше конца рабочего дня
//
// Если длительность сессии не делит рабочий день нацело, последний слот
// может заканчиваться после endTime - неполные слоты не обрезаются и не
// синтезируются, критерий только по времени начала
func generateTimeSlots(settings *domain.ScheduleSettings) []types.TimeString {
	startMin := settings.StartTime.Minutes()
	endMin := settings.EndTime.Minutes()
	step := settings.SessionDurationMinutes

	slots := make([]types.TimeString, 0)

	for m := startMin; m < endMin; m += step {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			// За пределы суток слот начала выйти не может, пока start < end < 24:00
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// filterBookedSlots убирает слоты, пересекающиеся с существующими записями
//
// Исключение по реальному пересечению интервалов: запись на несколько сессий
// закрывает каждый слот, который она накрывает. Запись 09:00 на 2 сессии по 30
// минут закрывает и 09:00, и 09:30
//
// Граничные случаи пересечением не считаются: запись, заканчивающаяся ровно в
// начале слота, его не закрывает. Отменённые записи слоты не занимают
func filterBookedSlots(
	slots []types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		slotStart := slot.Minutes()
		slotEnd := slotStart + slotDuration

		booked := false
		for _, appt := range appointments {
			if !appt.IsActive() {
				continue
			}
			if appt.Overlaps(slotStart, slotEnd) {
				booked = true
				break
			}
		}

		if !booked {
			available = append(available, slot)
		}
	}

	return available
}
