package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MateriaPrimaRepository persists raw materials. Stock and average cost are
// only written through GuardarStockTx, after the row was locked with
// ObtenerParaActualizarTx inside the same transaction.
type MateriaPrimaRepository interface {
	CrearTx(tx *gorm.DB, m *model.MateriaPrima) error
	Listar(ctx context.Context) ([]model.MateriaPrima, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.MateriaPrima, error)
	// Actualizar writes descriptive fields and thresholds, never stock or cost.
	Actualizar(ctx context.Context, m *model.MateriaPrima) error
	ObtenerParaActualizarTx(tx *gorm.DB, id uuid.UUID) (*model.MateriaPrima, error)
	GuardarStockTx(tx *gorm.DB, m *model.MateriaPrima) error
	// ListarAlertas returns active materials at or below their minimum, most depleted first.
	ListarAlertas(ctx context.Context) ([]model.MateriaPrima, error)
	DB() *gorm.DB
}

type materiaPrimaRepo struct{ db *gorm.DB }

func NewMateriaPrimaRepository(db *gorm.DB) MateriaPrimaRepository {
	return &materiaPrimaRepo{db: db}
}

func (r *materiaPrimaRepo) DB() *gorm.DB { return r.db }

func (r *materiaPrimaRepo) CrearTx(tx *gorm.DB, m *model.MateriaPrima) error {
	return traducirError(tx.Create(m).Error)
}

func (r *materiaPrimaRepo) Listar(ctx context.Context) ([]model.MateriaPrima, error) {
	var list []model.MateriaPrima
	err := r.db.WithContext(ctx).Scopes(activos).Order("categoria asc, nombre asc").Find(&list).Error
	return list, err
}

func (r *materiaPrimaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.MateriaPrima, error) {
	var m model.MateriaPrima
	if err := r.db.WithContext(ctx).Scopes(activos).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materiaPrimaRepo) Actualizar(ctx context.Context, m *model.MateriaPrima) error {
	return r.db.WithContext(ctx).Model(m).
		Select("categoria", "nombre", "unidad_medida", "stock_minimo", "punto_critico", "updated_at").
		Updates(m).Error
}

func (r *materiaPrimaRepo) ObtenerParaActualizarTx(tx *gorm.DB, id uuid.UUID) (*model.MateriaPrima, error) {
	var m model.MateriaPrima
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Scopes(activos).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materiaPrimaRepo) GuardarStockTx(tx *gorm.DB, m *model.MateriaPrima) error {
	return tx.Model(&model.MateriaPrima{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"stock_actual":   m.StockActual,
		"costo_promedio": m.CostoPromedio,
		"updated_at":     gorm.Expr("NOW()"),
	}).Error
}

func (r *materiaPrimaRepo) ListarAlertas(ctx context.Context) ([]model.MateriaPrima, error) {
	var list []model.MateriaPrima
	err := r.db.WithContext(ctx).Scopes(activos).
		Where("stock_actual <= stock_minimo").
		Order("stock_actual asc").
		Find(&list).Error
	return list, err
}
