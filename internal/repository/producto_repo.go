package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository covers products and their sellable presentations.
// Lookups by id only resolve active rows.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	CreatePresentacion(ctx context.Context, p *model.Presentacion) error
	// FindPresentacion preloads the owning product for line descriptions.
	FindPresentacion(ctx context.Context, id uuid.UUID) (*model.Presentacion, error)
	UpdatePresentacion(ctx context.Context, p *model.Presentacion) error
	SoftDeletePresentacion(ctx context.Context, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return traducirError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Scopes(activos).
		Preload("Presentaciones", activosPor("orden asc")).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return traducirError(r.db.WithContext(ctx).Omit("Categoria", "Presentaciones").Save(p).Error)
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) CreatePresentacion(ctx context.Context, p *model.Presentacion) error {
	return traducirError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productoRepo) FindPresentacion(ctx context.Context, id uuid.UUID) (*model.Presentacion, error) {
	var p model.Presentacion
	err := r.db.WithContext(ctx).Scopes(activos).Preload("Producto").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) UpdatePresentacion(ctx context.Context, p *model.Presentacion) error {
	return traducirError(r.db.WithContext(ctx).Omit("Producto").Save(p).Error)
}

func (r *productoRepo) SoftDeletePresentacion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Presentacion{}).Where("id = ?", id).Update("activo", false).Error
}
