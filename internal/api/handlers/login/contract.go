package login

import "time"

type TokenIssuer interface {
	NewAdminToken() (string, time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
