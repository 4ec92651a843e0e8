package repository

import (
	"context"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaFilter narrows a sale listing. Desde is inclusive and Hasta exclusive.
type VentaFilter struct {
	SucursalID *uuid.UUID
	Desde      *time.Time
	Hasta      *time.Time
	Estado     string
	Page       int
	Limit      int
}

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	// SiguienteNumero atomically reserves the next 1-based sale number of dia.
	// The counter row stays locked until tx ends, so concurrent sales of the
	// same day serialize and a rolled back sale releases its number.
	SiguienteNumero(ctx context.Context, tx *gorm.DB, dia time.Time) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter VentaFilter) ([]model.Venta, int64, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error

	// Reporting reads. Only COMPLETADA sales in [desde, hasta) are considered.
	Resumen(ctx context.Context, sucursalID *uuid.UUID, desde, hasta time.Time) (decimal.Decimal, int64, error)
	ItemsVendidos(ctx context.Context, sucursalID *uuid.UUID, desde, hasta time.Time) ([]model.VentaItem, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func detalleVenta(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sucursal").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("orden asc") }).
		Preload("Items.Presentacion.Producto").
		Preload("Items.Combo")
}

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return traducirError(tx.WithContext(ctx).Omit("Sucursal").Create(v).Error)
}

func (r *ventaRepo) SiguienteNumero(ctx context.Context, tx *gorm.DB, dia time.Time) (int, error) {
	var n int
	err := tx.WithContext(ctx).Raw(`
INSERT INTO secuencias_venta (fecha, ultimo) VALUES (?, 1)
ON CONFLICT (fecha) DO UPDATE SET ultimo = secuencias_venta.ultimo + 1
RETURNING ultimo`, dia.Format("2006-01-02")).Scan(&n).Error
	return n, err
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	if err := r.db.WithContext(ctx).Scopes(detalleVenta).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filter VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.SucursalID != nil {
		q = q.Where("sucursal_id = ?", *filter.SucursalID)
	}
	if filter.Desde != nil {
		q = q.Where("fecha >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("fecha < ?", *filter.Hasta)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Scopes(detalleVenta).
		Order("fecha DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

func (r *ventaRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Venta{}).Where("id = ?", id).Update("estado", estado).Error
}

func completadas(sucursalID *uuid.UUID, desde, hasta time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("ventas.estado = ? AND ventas.fecha >= ? AND ventas.fecha < ?", model.VentaCompletada, desde, hasta)
		if sucursalID != nil {
			db = db.Where("ventas.sucursal_id = ?", *sucursalID)
		}
		return db
	}
}

func (r *ventaRepo) Resumen(ctx context.Context, sucursalID *uuid.UUID, desde, hasta time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var cantidad int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Scopes(completadas(sucursalID, desde, hasta)).
		Select("COALESCE(SUM(ventas.total), 0), COUNT(*)").
		Row().Scan(&total, &cantidad)
	return total, cantidad, err
}

func (r *ventaRepo) ItemsVendidos(ctx context.Context, sucursalID *uuid.UUID, desde, hasta time.Time) ([]model.VentaItem, error) {
	var items []model.VentaItem
	err := r.db.WithContext(ctx).
		Select("venta_items.*").
		Joins("JOIN ventas ON ventas.id = venta_items.venta_id").
		Scopes(completadas(sucursalID, desde, hasta)).
		Preload("Venta").
		Preload("Presentacion.Producto.Categoria").
		Preload("Combo").
		Order("ventas.fecha asc, venta_items.orden asc").
		Find(&items).Error
	return items, err
}
