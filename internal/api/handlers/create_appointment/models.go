package create_appointment

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	createAppointment "github.com/Hayzedd-A/appointment-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Kind          string  `json:"kind"` // visit | accommodate
	Address       *string `json:"address,omitempty"`
	ExtraInfo     *string `json:"extraInfo,omitempty"`
	StartDateTime string  `json:"startDateTime"` // RFC3339, например "2025-10-15T10:00:00Z"
	Sessions      int     `json:"sessionCount"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Kind            string  `json:"kind"`
	Address         *string `json:"address,omitempty"`
	ExtraInfo       *string `json:"extraInfo,omitempty"`
	StartDateTime   string  `json:"startDateTime"`
	Sessions        int     `json:"sessionCount"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом startDateTime)
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Kind:      domain.AppointmentKind(r.Kind),
		Address:   r.Address,
		ExtraInfo: r.ExtraInfo,
		Start:     start,
		Sessions:  r.Sessions,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	start := resp.Date.Add(time.Duration(resp.StartTime.Minutes()) * time.Minute)

	return &AppointmentResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Phone:           resp.Phone,
		Kind:            string(resp.Kind),
		Address:         resp.Address,
		ExtraInfo:       resp.ExtraInfo,
		StartDateTime:   start.Format(time.RFC3339),
		Sessions:        resp.Sessions,
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
