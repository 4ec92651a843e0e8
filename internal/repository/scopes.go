package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicado is returned when an insert or update hits a unique constraint.
	ErrDuplicado = errors.New("registro duplicado")
	// ErrReferenciaInvalida is returned when a foreign key does not resolve.
	ErrReferenciaInvalida = errors.New("referencia inválida")
)

// activos is the default read filter for soft-deleted entities.
func activos(db *gorm.DB) *gorm.DB {
	return db.Where("activo = ?", true)
}

// traducirError maps PostgreSQL constraint violations to repository errors.
// Any other error, gorm.ErrRecordNotFound included, is returned unchanged.
func traducirError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicado
		case "23503":
			return ErrReferenciaInvalida
		}
	}
	return err
}
