package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AtributoRepository covers category attributes and their options.
type AtributoRepository interface {
	Crear(ctx context.Context, a *model.Atributo) error
	ListarPorCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.Atributo, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Atributo, error)
	Actualizar(ctx context.Context, a *model.Atributo) error
	Desactivar(ctx context.Context, id uuid.UUID) error

	CrearOpcion(ctx context.Context, o *model.AtributoOpcion) error
	// ObtenerOpcion preloads the parent attribute.
	ObtenerOpcion(ctx context.Context, id uuid.UUID) (*model.AtributoOpcion, error)
	ActualizarOpcion(ctx context.Context, o *model.AtributoOpcion) error
	DesactivarOpcion(ctx context.Context, id uuid.UUID) error
}

type atributoRepository struct{ db *gorm.DB }

func NewAtributoRepository(db *gorm.DB) AtributoRepository {
	return &atributoRepository{db: db}
}

func (r *atributoRepository) Crear(ctx context.Context, a *model.Atributo) error {
	return traducirError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *atributoRepository) ListarPorCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.Atributo, error) {
	var list []model.Atributo
	err := r.db.WithContext(ctx).Scopes(activos).
		Preload("Opciones", activosPor("orden asc")).
		Where("categoria_id = ?", categoriaID).
		Order("orden asc").
		Find(&list).Error
	return list, err
}

func (r *atributoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Atributo, error) {
	var a model.Atributo
	err := r.db.WithContext(ctx).Scopes(activos).
		Preload("Opciones", activosPor("orden asc")).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *atributoRepository) Actualizar(ctx context.Context, a *model.Atributo) error {
	return traducirError(r.db.WithContext(ctx).Omit("Opciones").Save(a).Error)
}

func (r *atributoRepository) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Atributo{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *atributoRepository) CrearOpcion(ctx context.Context, o *model.AtributoOpcion) error {
	return traducirError(r.db.WithContext(ctx).Create(o).Error)
}

func (r *atributoRepository) ObtenerOpcion(ctx context.Context, id uuid.UUID) (*model.AtributoOpcion, error) {
	var o model.AtributoOpcion
	err := r.db.WithContext(ctx).Scopes(activos).Preload("Atributo").First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *atributoRepository) ActualizarOpcion(ctx context.Context, o *model.AtributoOpcion) error {
	return traducirError(r.db.WithContext(ctx).Omit("Atributo").Save(o).Error)
}

func (r *atributoRepository) DesactivarOpcion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AtributoOpcion{}).Where("id = ?", id).Update("activo", false).Error
}
