package settings

import (
	"context"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
	Create(ctx context.Context, s *domain.ScheduleSettings) (*domain.ScheduleSettings, error)
	Update(ctx context.Context, s *domain.ScheduleSettings) (*domain.ScheduleSettings, error)
}

// Cache интерфейс кэша (для сброса слотов при смене расписания)
type Cache interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
