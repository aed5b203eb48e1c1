package domain

// Default schedule settings, created on first read when no row exists
const (
	DefaultStartTime              = "09:00"
	DefaultEndTime                = "17:00"
	DefaultSessionDurationMinutes = 30
)

// Business validation constants
const (
	MinSessionDurationMinutes = 1
	MaxSessionDurationMinutes = 480 // 8 hours
	MinSessions               = 1
	MaxExtraInfoLength        = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
