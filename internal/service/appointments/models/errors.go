package models

import "errors"

// ErrUnknownStatus возвращается при неизвестном значении статуса
var ErrUnknownStatus = errors.New("unknown appointment status")
