package service

import (
	"errors"
	"fmt"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Error kinds surfaced by the services. Match them with errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidArgument   = errors.New("argumento inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConflict          = errors.New("conflicto con un registro existente")
)

// Error is a failure of a given kind carrying a message fit for the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func invalid(format string, args ...any) error {
	return newError(ErrInvalidArgument, format, args...)
}

// lookupErr turns a missing row into ErrNotFound with msg.
func lookupErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("%s", msg)
	}
	return err
}

// writeErr maps constraint violations reported by the repositories.
func writeErr(err error, duplicado string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicado):
		return newError(ErrConflict, "%s", duplicado)
	case errors.Is(err, repository.ErrReferenciaInvalida):
		return notFound("referencia a un registro inexistente")
	}
	return err
}

func parseID(raw, campo string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid("%s inválido", campo)
	}
	return id, nil
}
