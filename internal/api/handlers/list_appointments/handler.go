package list_appointments

import (
	"errors"
	"net/http"

	"github.com/Hayzedd-A/appointment-booking/internal/api/handlers"
	"github.com/Hayzedd-A/appointment-booking/internal/service/appointments"
	"github.com/Hayzedd-A/appointment-booking/internal/service/appointments/models"
)

const msgInvalidStatus = "invalid status filter, expected pending, completed or cancelled"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: status (опционально, pending | completed | cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.ListAppointmentsRequest{IncludeInactive: true}

	// Опциональный фильтр по статусу
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		serviceReq.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d",
		len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
