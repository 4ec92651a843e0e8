package repository

import (
	"context"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoInventarioFilter narrows a movement listing. Desde is inclusive and
// Hasta exclusive.
type MovimientoInventarioFilter struct {
	MateriaPrimaID *uuid.UUID
	Tipo           string
	Desde          *time.Time
	Hasta          *time.Time
	Limit          int
}

// MovimientoInventarioRepository is append-only: there is no update or delete.
type MovimientoInventarioRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	List(ctx context.Context, filter MovimientoInventarioFilter) ([]model.MovimientoInventario, error)
	// SumCosto adds up costo_unitario × cantidad for one movement type in [desde, hasta).
	// Movements without unit cost count as zero.
	SumCosto(ctx context.Context, tipo string, desde, hasta time.Time) (decimal.Decimal, error)
}

type movimientoInventarioRepo struct{ db *gorm.DB }

func NewMovimientoInventarioRepository(db *gorm.DB) MovimientoInventarioRepository {
	return &movimientoInventarioRepo{db: db}
}

func (r *movimientoInventarioRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return traducirError(tx.Omit("MateriaPrima").Create(m).Error)
}

func (r *movimientoInventarioRepo) List(ctx context.Context, filter MovimientoInventarioFilter) ([]model.MovimientoInventario, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).
		Preload("MateriaPrima")
	if filter.MateriaPrimaID != nil {
		q = q.Where("materia_prima_id = ?", *filter.MateriaPrimaID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Desde != nil {
		q = q.Where("fecha >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("fecha < ?", *filter.Hasta)
	}

	limit := filter.Limit
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var movimientos []model.MovimientoInventario
	err := q.Order("fecha DESC").Limit(limit).Find(&movimientos).Error
	return movimientos, err
}

func (r *movimientoInventarioRepo) SumCosto(ctx context.Context, tipo string, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).
		Select("COALESCE(SUM(COALESCE(costo_unitario, 0) * cantidad), 0)").
		Where("tipo = ? AND fecha >= ? AND fecha < ?", tipo, desde, hasta).
		Row().Scan(&total)
	return total, err
}
