package domain

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// ScheduleSettings represents the clinic-wide booking schedule
// A single row exists in storage; it is created with defaults on first read
// and replaced wholesale by admin updates
type ScheduleSettings struct {
	ID                     int64
	WorkingDays            []string // lowercase weekday names, e.g. ["monday", "friday"]
	StartTime              types.TimeString
	EndTime                types.TimeString
	SessionDurationMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultScheduleSettings returns the settings created when none exist yet
func DefaultScheduleSettings() *ScheduleSettings {
	return &ScheduleSettings{
		WorkingDays:            []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:              types.TimeString(DefaultStartTime),
		EndTime:                types.TimeString(DefaultEndTime),
		SessionDurationMinutes: DefaultSessionDurationMinutes,
	}
}

// IsWorkingDay reports whether the given date falls on a configured working day
func (s *ScheduleSettings) IsWorkingDay(date time.Time) bool {
	name := WeekdayName(date.Weekday())
	for _, day := range s.WorkingDays {
		if day == name {
			return true
		}
	}
	return false
}

// WeekdayName returns the lowercase english name used in WorkingDays
func WeekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// IsValidWeekdayName reports whether name is a known lowercase weekday name
func IsValidWeekdayName(name string) bool {
	switch name {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	default:
		return false
	}
}
