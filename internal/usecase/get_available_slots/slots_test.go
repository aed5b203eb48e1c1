package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

func settingsWith(start, end string, duration int) *domain.ScheduleSettings {
	return &domain.ScheduleSettings{
		WorkingDays:            []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:              types.TimeString(start),
		EndTime:                types.TimeString(end),
		SessionDurationMinutes: duration,
	}
}

func TestGenerateTimeSlots_StandardDay(t *testing.T) {
	// 09:00-17:00 по 30 минут = 16 слотов
	slots := generateTimeSlots(settingsWith("09:00", "17:00", 30))

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_LastSlotSpillsOverEnd(t *testing.T) {
	// 09:00-10:10 по 25 минут: 09:00, 09:25, 09:50
	// Последний слот заканчивается в 10:15, но его начало строго меньше 10:10,
	// поэтому он остается
	slots := generateTimeSlots(settingsWith("09:00", "10:10", 25))

	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:50"), slots[2])
}

func TestGenerateTimeSlots_SingleSession(t *testing.T) {
	// Длительность больше рабочего дня - остается один слот на его начало
	slots := generateTimeSlots(settingsWith("09:00", "10:00", 90))

	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func appointmentAt(start string, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestFilterBookedSlots_ExactMatch(t *testing.T) {
	slots := generateTimeSlots(settingsWith("09:00", "11:00", 30))
	booked := []*domain.Appointment{
		appointmentAt("09:30", 30, domain.StatusPending),
	}

	available := filterBookedSlots(slots, 30, booked)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, available)
}

func TestFilterBookedSlots_MultiSessionBlocksCoveredSlots(t *testing.T) {
	// Запись 10:00 на 2 сессии по 30 минут закрывает и 10:00, и 10:30
	slots := generateTimeSlots(settingsWith("09:00", "12:00", 30))
	booked := []*domain.Appointment{
		appointmentAt("10:00", 60, domain.StatusPending),
	}

	available := filterBookedSlots(slots, 30, booked)

	assert.NotContains(t, available, types.TimeString("10:00"))
	assert.NotContains(t, available, types.TimeString("10:30"))
	assert.Contains(t, available, types.TimeString("09:30"))
	assert.Contains(t, available, types.TimeString("11:00"))
}

func TestFilterBookedSlots_MisalignedBookingBlocksBothNeighbours(t *testing.T) {
	// Запись 09:45-10:15 пересекает слоты 09:30 и 10:00
	slots := generateTimeSlots(settingsWith("09:00", "11:00", 30))
	booked := []*domain.Appointment{
		appointmentAt("09:45", 30, domain.StatusPending),
	}

	available := filterBookedSlots(slots, 30, booked)

	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, available)
}

func TestFilterBookedSlots_AdjacentBookingDoesNotBlock(t *testing.T) {
	// Запись, заканчивающаяся ровно в начале слота, его не закрывает
	slots := []types.TimeString{"10:00"}
	booked := []*domain.Appointment{
		appointmentAt("09:30", 30, domain.StatusPending),
		appointmentAt("10:30", 30, domain.StatusPending),
	}

	available := filterBookedSlots(slots, 30, booked)

	assert.Equal(t, []types.TimeString{"10:00"}, available)
}

func TestFilterBookedSlots_CancelledFreesSlot(t *testing.T) {
	slots := generateTimeSlots(settingsWith("09:00", "11:00", 30))
	booked := []*domain.Appointment{
		appointmentAt("09:30", 30, domain.StatusCancelled),
		appointmentAt("10:00", 30, domain.StatusCompleted),
	}

	available := filterBookedSlots(slots, 30, booked)

	// Отменённая запись слот освобождает, завершённая - нет
	assert.Contains(t, available, types.TimeString("09:30"))
	assert.NotContains(t, available, types.TimeString("10:00"))
}
