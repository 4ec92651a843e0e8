package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SucursalRepository interface {
	Crear(ctx context.Context, s *model.Sucursal) error
	Listar(ctx context.Context) ([]model.Sucursal, error)
	// ObtenerPorID only returns active branches.
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error)
	Actualizar(ctx context.Context, s *model.Sucursal) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type sucursalRepository struct{ db *gorm.DB }

func NewSucursalRepository(db *gorm.DB) SucursalRepository {
	return &sucursalRepository{db: db}
}

func (r *sucursalRepository) Crear(ctx context.Context, s *model.Sucursal) error {
	return traducirError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *sucursalRepository) Listar(ctx context.Context) ([]model.Sucursal, error) {
	var list []model.Sucursal
	err := r.db.WithContext(ctx).Scopes(activos).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *sucursalRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error) {
	var s model.Sucursal
	if err := r.db.WithContext(ctx).Scopes(activos).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sucursalRepository) Actualizar(ctx context.Context, s *model.Sucursal) error {
	return traducirError(r.db.WithContext(ctx).Save(s).Error)
}

func (r *sucursalRepository) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Sucursal{}).Where("id = ?", id).Update("activo", false).Error
}
