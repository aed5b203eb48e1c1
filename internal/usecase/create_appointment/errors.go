package create_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_appointment: missing required fields")

	// ErrAddressRequired возвращается, когда для kind = accommodate не указан адрес
	ErrAddressRequired = errors.New("create_appointment: address is required for accommodate kind")

	// ErrSettingsNotConfigured возвращается, когда настройки расписания ещё не созданы
	// Серверная предпосылка, а не ошибка клиента
	ErrSettingsNotConfigured = errors.New("create_appointment: schedule settings not configured")

	// ErrNotWorkingDay возвращается, когда выбранный день не является рабочим
	ErrNotWorkingDay = errors.New("create_appointment: selected day is not a working day")

	// ErrOutsideWorkingHours возвращается, когда время начала вне рабочих часов
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment time is outside working hours")

	// ErrSlotTaken возвращается, когда интервал записи пересекается с существующей
	ErrSlotTaken = errors.New("create_appointment: time slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
