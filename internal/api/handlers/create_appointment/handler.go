package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Hayzedd-A/appointment-booking/internal/api/handlers"
	createAppointment "github.com/Hayzedd-A/appointment-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDateTime       = "invalid startDateTime, expected RFC3339 timestamp"
	msgMissingFields         = "name, phone, kind and startDateTime are required"
	msgAddressRequired       = "address is required for accommodate appointments"
	msgNotWorkingDay         = "selected day is not a working day"
	msgOutsideWorkingHours   = "appointment time is outside working hours"
	msgSlotTaken             = "this time slot is already booked"
	msgInvalidInput          = "invalid appointment data"
	msgScheduleNotConfigured = "schedule is not configured"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом startDateTime)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse startDateTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingFields):
			h.logger.Warn("POST /appointments - Missing required fields: phone=%s", req.Phone)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrAddressRequired):
			h.logger.Warn("POST /appointments - Address required: phone=%s", req.Phone)
			handlers.RespondBadRequest(w, msgAddressRequired)

		case errors.Is(err, createAppointment.ErrNotWorkingDay):
			h.logger.Warn("POST /appointments - Not a working day: start=%s, phone=%s", req.StartDateTime, req.Phone)
			handlers.RespondBadRequest(w, msgNotWorkingDay)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: start=%s, phone=%s", req.StartDateTime, req.Phone)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot already booked: start=%s, phone=%s", req.StartDateTime, req.Phone)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: phone=%s, error=%v", req.Phone, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrSettingsNotConfigured):
			h.logger.Error("POST /appointments - Schedule not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleNotConfigured)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: phone=%s, error=%v", req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, start=%s",
		result.ID, req.StartDateTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
