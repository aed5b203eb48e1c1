package update_settings

import (
	"errors"
	"net/http"

	"github.com/Hayzedd-A/appointment-booking/internal/api/handlers"
	"github.com/Hayzedd-A/appointment-booking/internal/service/settings"
	"github.com/Hayzedd-A/appointment-booking/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSettings    = "invalid settings data"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated successfully: days=%v, hours=%s-%s",
		result.WorkingDays, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
