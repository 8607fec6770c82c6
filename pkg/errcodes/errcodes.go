package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Генерация персон
	InvalidName      failure.ErrorCode = "InvalidName"      // Пустое имя для отчества
	InvalidGender    failure.ErrorCode = "InvalidGender"    // Пол не male/female
	InvalidCount     failure.ErrorCode = "InvalidCount"     // count вне диапазона
	EmptyNamePool    failure.ErrorCode = "EmptyNamePool"    // Один из списков имён пуст
	NamePoolNotReady failure.ErrorCode = "NamePoolNotReady" // Источник имён недоступен
)
