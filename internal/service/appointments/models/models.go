package models

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей (админка)
type ListAppointmentsRequest struct {
	Status          *string // Фильтр по статусу (опционально)
	IncludeInactive bool    // Включать ли отменённые записи
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Kind            string    `json:"kind"`
	Address         *string   `json:"address,omitempty"`
	ExtraInfo       *string   `json:"extraInfo,omitempty"`
	StartDateTime   time.Time `json:"startDateTime"`
	Sessions        int       `json:"sessionCount"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Дата и время начала склеиваются обратно в единый момент времени
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	start := a.Date.Add(time.Duration(a.StartTime.Minutes()) * time.Minute)

	return &AppointmentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Phone:           a.Phone,
		Kind:            string(a.Kind),
		Address:         a.Address,
		ExtraInfo:       a.ExtraInfo,
		StartDateTime:   start,
		Sessions:        a.Sessions,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if converted := FromDomainAppointment(appt); converted != nil {
			resp.Appointments = append(resp.Appointments, *converted)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку статуса в domain.AppointmentStatus
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}
