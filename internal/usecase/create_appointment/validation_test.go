package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/pkg/ptr"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

func validRequest() *Request {
	return &Request{
		Name:     "Jane Smith",
		Phone:    "+15550001122",
		Kind:     domain.KindVisit,
		Start:    time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
		Sessions: 1,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_MissingFields(t *testing.T) {
	req := validRequest()
	req.Name = "   "
	assert.ErrorIs(t, validateRequest(req), ErrMissingFields)

	req = validRequest()
	req.Phone = ""
	assert.ErrorIs(t, validateRequest(req), ErrMissingFields)

	req = validRequest()
	req.Kind = ""
	assert.ErrorIs(t, validateRequest(req), ErrMissingFields)

	req = validRequest()
	req.Start = time.Time{}
	assert.ErrorIs(t, validateRequest(req), ErrMissingFields)
}

func TestValidateRequest_UnknownKind(t *testing.T) {
	req := validRequest()
	req.Kind = domain.AppointmentKind("house-call")
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_AccommodateRequiresAddress(t *testing.T) {
	req := validRequest()
	req.Kind = domain.KindAccommodate
	assert.ErrorIs(t, validateRequest(req), ErrAddressRequired)

	req.Address = ptr.Ptr("  ")
	assert.ErrorIs(t, validateRequest(req), ErrAddressRequired)

	req.Address = ptr.Ptr("12 Main St")
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_Sessions(t *testing.T) {
	req := validRequest()
	req.Sessions = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateSchedule(t *testing.T) {
	settings := domain.DefaultScheduleSettings()

	req := validRequest() // понедельник 10:00
	assert.NoError(t, validateSchedule(settings, req, 600))

	// Воскресенье
	req.Start = time.Date(2025, 10, 19, 10, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, validateSchedule(settings, req, 600), ErrNotWorkingDay)

	// До начала рабочего дня
	req = validRequest()
	assert.ErrorIs(t, validateSchedule(settings, req, 8*60+30), ErrOutsideWorkingHours)

	// Ровно в конец рабочего дня - отказ, интервал [start, end)
	assert.ErrorIs(t, validateSchedule(settings, req, 17*60), ErrOutsideWorkingHours)

	// Последний слот дня проходит, даже если сессия закончится после 17:00
	assert.NoError(t, validateSchedule(settings, req, 16*60+30))

	// Ровно в начало рабочего дня
	assert.NoError(t, validateSchedule(settings, req, 9*60))
}

func TestHasConflict(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusPending,
		},
		{
			StartTime:       types.TimeString("14:00"),
			DurationMinutes: 30,
			Status:          domain.StatusCancelled,
		},
	}

	assert.True(t, hasConflict(appointments, 600, 630))
	assert.True(t, hasConflict(appointments, 570, 630))
	assert.False(t, hasConflict(appointments, 660, 690))

	// Отменённая запись конфликт не создает
	assert.False(t, hasConflict(appointments, 14*60, 14*60+30))
}
