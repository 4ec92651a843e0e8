package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Categorias ────────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=500"`
	Icono       *string `json:"icono"       validate:"omitempty,max=50"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=500"`
	Icono       *string `json:"icono"       validate:"omitempty,max=50"`
}

type CategoriaResponse struct {
	ID          uuid.UUID          `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion *string            `json:"descripcion,omitempty"`
	Icono       *string            `json:"icono,omitempty"`
	Productos   []ProductoResponse `json:"productos"`
	Atributos   []AtributoResponse `json:"atributos"`
}

// ── Productos / Presentaciones ────────────────────────────────────────────────

type CrearProductoRequest struct {
	CategoriaID string  `json:"categoria_id" validate:"required,uuid"`
	Codigo      *string `json:"codigo"       validate:"omitempty,max=50"`
	Nombre      string  `json:"nombre"       validate:"required,min=2,max=150"`
	Descripcion *string `json:"descripcion"  validate:"omitempty,max=500"`
	ImagenURL   *string `json:"imagen_url"   validate:"omitempty,url"`
}

type ActualizarProductoRequest struct {
	CategoriaID *string `json:"categoria_id" validate:"omitempty,uuid"`
	Codigo      *string `json:"codigo"       validate:"omitempty,max=50"`
	Nombre      *string `json:"nombre"       validate:"omitempty,min=2,max=150"`
	Descripcion *string `json:"descripcion"  validate:"omitempty,max=500"`
	ImagenURL   *string `json:"imagen_url"   validate:"omitempty,url"`
}

type ProductoResponse struct {
	ID             uuid.UUID              `json:"id"`
	CategoriaID    uuid.UUID              `json:"categoria_id"`
	Codigo         *string                `json:"codigo,omitempty"`
	Nombre         string                 `json:"nombre"`
	Descripcion    *string                `json:"descripcion,omitempty"`
	ImagenURL      *string                `json:"imagen_url,omitempty"`
	Presentaciones []PresentacionResponse `json:"presentaciones"`
}

type CrearPresentacionRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Nombre     string          `json:"nombre"      validate:"required,min=1,max=100"`
	Cantidad   int             `json:"cantidad"    validate:"omitempty,min=1"`
	Precio     decimal.Decimal `json:"precio"      validate:"min=0"`
	Orden      int             `json:"orden"`
}

type ActualizarPresentacionRequest struct {
	Nombre   *string          `json:"nombre"   validate:"omitempty,min=1,max=100"`
	Cantidad *int             `json:"cantidad" validate:"omitempty,min=1"`
	Precio   *decimal.Decimal `json:"precio"   validate:"omitempty,min=0"`
	Orden    *int             `json:"orden"`
}

type PresentacionResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductoID uuid.UUID       `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	Orden      int             `json:"orden"`
}

// ── Atributos / Opciones ──────────────────────────────────────────────────────

type CrearAtributoRequest struct {
	CategoriaID string `json:"categoria_id" validate:"required,uuid"`
	Nombre      string `json:"nombre"       validate:"required,min=2,max=100"`
	Codigo      string `json:"codigo"       validate:"required,max=50"`
	EsMultiple  bool   `json:"es_multiple"`
	EsRequerido bool   `json:"es_requerido"`
	Orden       int    `json:"orden"`
}

type ActualizarAtributoRequest struct {
	Nombre      *string `json:"nombre"       validate:"omitempty,min=2,max=100"`
	Codigo      *string `json:"codigo"       validate:"omitempty,max=50"`
	EsMultiple  *bool   `json:"es_multiple"`
	EsRequerido *bool   `json:"es_requerido"`
	Orden       *int    `json:"orden"`
}

type AtributoResponse struct {
	ID          uuid.UUID        `json:"id"`
	CategoriaID uuid.UUID        `json:"categoria_id"`
	Nombre      string           `json:"nombre"`
	Codigo      string           `json:"codigo"`
	EsMultiple  bool             `json:"es_multiple"`
	EsRequerido bool             `json:"es_requerido"`
	Orden       int              `json:"orden"`
	Opciones    []OpcionResponse `json:"opciones"`
}

type CrearOpcionRequest struct {
	AtributoID  string          `json:"atributo_id"  validate:"required,uuid"`
	Nombre      string          `json:"nombre"       validate:"required,min=1,max=100"`
	Codigo      string          `json:"codigo"       validate:"required,max=50"`
	PrecioExtra decimal.Decimal `json:"precio_extra" validate:"min=0"`
	Orden       int             `json:"orden"`
}

type ActualizarOpcionRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=1,max=100"`
	Codigo      *string          `json:"codigo"       validate:"omitempty,max=50"`
	PrecioExtra *decimal.Decimal `json:"precio_extra" validate:"omitempty,min=0"`
	Orden       *int             `json:"orden"`
}

type OpcionResponse struct {
	ID          uuid.UUID       `json:"id"`
	AtributoID  uuid.UUID       `json:"atributo_id"`
	Nombre      string          `json:"nombre"`
	Codigo      string          `json:"codigo"`
	PrecioExtra decimal.Decimal `json:"precio_extra"`
	Orden       int             `json:"orden"`
}

// CatalogoResponse is the full menu served to the point of sale.
type CatalogoResponse struct {
	Categorias []CategoriaResponse `json:"categorias"`
	Combos     []ComboResponse     `json:"combos"`
}
