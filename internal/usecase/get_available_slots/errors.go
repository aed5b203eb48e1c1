package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrSettingsNotConfigured возвращается, когда настройки расписания ещё не созданы
	// Серверная ошибка: без настроек сервис не может считать доступность
	ErrSettingsNotConfigured = errors.New("get_available_slots: schedule settings not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
