package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	SucursalID string `form:"sucursal_id"`
	Desde      string `form:"desde"`  // YYYY-MM-DD, inclusive
	Hasta      string `form:"hasta"`  // YYYY-MM-DD, inclusive
	Estado     string `form:"estado"` // COMPLETADA | ANULADA; empty = all
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest sells either a presentation or a combo. Personalizacion maps
// attribute code to option id and only applies to presentations.
type ItemVentaRequest struct {
	PresentacionID  *string           `json:"presentacion_id" validate:"omitempty,uuid"`
	ComboID         *string           `json:"combo_id"        validate:"omitempty,uuid"`
	Cantidad        int               `json:"cantidad"`
	Personalizacion map[string]string `json:"personalizacion"`
}

type RegistrarVentaRequest struct {
	SucursalID string             `json:"sucursal_id" validate:"required,uuid"`
	Descuento  decimal.Decimal    `json:"descuento"   validate:"min=0"`
	Items      []ItemVentaRequest `json:"items"       validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OpcionElegidaResponse struct {
	OpcionID    uuid.UUID       `json:"opcion_id"`
	Nombre      string          `json:"nombre"`
	PrecioExtra decimal.Decimal `json:"precio_extra"`
}

type ItemVentaResponse struct {
	ID              uuid.UUID                        `json:"id"`
	TipoItem        string                           `json:"tipo_item"`
	PresentacionID  *uuid.UUID                       `json:"presentacion_id,omitempty"`
	ComboID         *uuid.UUID                       `json:"combo_id,omitempty"`
	Descripcion     string                           `json:"descripcion"`
	Cantidad        int                              `json:"cantidad"`
	PrecioUnitario  decimal.Decimal                  `json:"precio_unitario"`
	PrecioExtras    decimal.Decimal                  `json:"precio_extras"`
	Subtotal        decimal.Decimal                  `json:"subtotal"`
	Personalizacion map[string]OpcionElegidaResponse `json:"personalizacion,omitempty"`
}

type VentaResponse struct {
	ID         uuid.UUID           `json:"id"`
	Codigo     string              `json:"codigo"`
	SucursalID uuid.UUID           `json:"sucursal_id"`
	Sucursal   string              `json:"sucursal"`
	Fecha      string              `json:"fecha"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Descuento  decimal.Decimal     `json:"descuento"`
	Total      decimal.Decimal     `json:"total"`
	Estado     string              `json:"estado"`
	Items      []ItemVentaResponse `json:"items"`
}
