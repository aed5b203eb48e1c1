package models

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
)

// UpdateSettingsRequest запрос на полную замену настроек расписания
type UpdateSettingsRequest struct {
	WorkingDays     []string `json:"workingDays"`
	StartTime       string   `json:"startTime"`       // "09:00"
	EndTime         string   `json:"endTime"`         // "17:00"
	SessionDuration int      `json:"sessionDuration"` // минуты
}

// SettingsResponse ответ с настройками расписания
type SettingsResponse struct {
	WorkingDays     []string  `json:"workingDays"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	SessionDuration int       `json:"sessionDuration"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ScheduleSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		WorkingDays:     s.WorkingDays,
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		SessionDuration: s.SessionDurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
