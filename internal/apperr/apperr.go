// Package apperr define la taxonomía de errores de negocio que los handlers
// traducen a códigos HTTP: validación y conflicto a 400, no encontrado a 404,
// cualquier otro a 500 genérico.
package apperr

import "fmt"

// ValidationError: el llamador puede corregir la petición (campo inválido o
// regla de negocio incumplida, p.ej. stock insuficiente).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError: el recurso con ese id no existe.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ConflictError: colisión de nombre. Se responde 400 (no 409) para mantener
// el contrato original del API.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// RemoteUnavailableError: el servicio de productos no respondió o respondió
// con error. Nunca llega al cliente tal cual: en la creación se degrada a
// ValidationError y en la reconciliación se registra y se ignora.
type RemoteUnavailableError struct {
	Op  string
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("productos api: %s: %v", e.Op, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) error {
	return &NotFoundError{Msg: msg}
}

func Conflict(msg string) error {
	return &ConflictError{Msg: msg}
}
