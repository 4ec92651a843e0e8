package repository

import (
	"context"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaRepository reads categories together with their active catalog tree.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	// Listar returns active categories ordered by name with products,
	// presentations, attributes and options preloaded.
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func activosPor(orden string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(activos).Order(orden)
	}
}

func arbolCatalogo(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Productos", activosPor("nombre asc")).
		Preload("Productos.Presentaciones", activosPor("orden asc")).
		Preload("Atributos", activosPor("orden asc")).
		Preload("Atributos.Opciones", activosPor("orden asc"))
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	return traducirError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Scopes(activos, arbolCatalogo).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Scopes(activos, arbolCatalogo).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Actualizar(ctx context.Context, c *model.Categoria) error {
	return traducirError(r.db.WithContext(ctx).Omit("Productos", "Atributos").Save(c).Error)
}

func (r *categoriaRepository) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).Where("id = ?", id).Update("activo", false).Error
}
