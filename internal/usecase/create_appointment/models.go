package create_appointment

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Name      string
	Phone     string
	Kind      domain.AppointmentKind
	Address   *string // обязателен для kind = accommodate
	ExtraInfo *string
	Start     time.Time // полная дата и время начала
	Sessions  int       // количество сессий подряд, >= 1
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	Name            string
	Phone           string
	Kind            domain.AppointmentKind
	Address         *string
	ExtraInfo       *string
	Date            time.Time
	StartTime       types.TimeString
	Sessions        int
	DurationMinutes int
	Status          domain.AppointmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fromDomain конвертирует доменную модель в ответ use case
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		Name:            appt.Name,
		Phone:           appt.Phone,
		Kind:            appt.Kind,
		Address:         appt.Address,
		ExtraInfo:       appt.ExtraInfo,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		Sessions:        appt.Sessions,
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
