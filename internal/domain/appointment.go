package domain

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// AppointmentKind represents the kind of a requested appointment
type AppointmentKind string

const (
	KindVisit       AppointmentKind = "visit"
	KindAccommodate AppointmentKind = "accommodate"
)

// IsValid returns true if the kind is one of the known values
func (k AppointmentKind) IsValid() bool {
	return k == KindVisit || k == KindAccommodate
}

// Appointment represents a booked appointment in the system
type Appointment struct {
	ID        int64
	Name      string
	Phone     string
	Kind      AppointmentKind
	Address   *string // required when Kind = accommodate
	ExtraInfo *string

	Date      time.Time // appointment day, time part zeroed
	StartTime types.TimeString
	Sessions  int

	// Denormalized at creation from Sessions * ScheduleSettings.SessionDurationMinutes,
	// so later settings changes do not move existing end times.
	DurationMinutes int

	Status AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// StartMinutes returns the start of the appointment in minutes from midnight
func (a *Appointment) StartMinutes() int {
	return a.StartTime.Minutes()
}

// EndMinutes returns the exclusive end of the appointment in minutes from midnight
// May exceed 24*60 when the last session spills past the end of day
func (a *Appointment) EndMinutes() int {
	return a.StartTime.Minutes() + a.DurationMinutes
}

// Overlaps reports whether the appointment interval intersects [startMin, endMin)
// Touching intervals (one ends exactly where the other starts) do not overlap
func (a *Appointment) Overlaps(startMin, endMin int) bool {
	return a.StartMinutes() < endMin && a.EndMinutes() > startMin
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	Date            *time.Time         // single day, if set
	Status          *AppointmentStatus // optional status filter
	IncludeInactive bool               // include cancelled appointments
}
