package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComboRequest is used for both create and full update; items are replaced.
type ComboRequest struct {
	Nombre      string             `json:"nombre"       validate:"required,min=2,max=150"`
	Descripcion *string            `json:"descripcion"  validate:"omitempty,max=500"`
	Precio      decimal.Decimal    `json:"precio"       validate:"min=0"`
	Tipo        string             `json:"tipo"         validate:"required,oneof=FIJO ESTACIONAL"`
	FechaInicio *string            `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    *string            `json:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`
	Items       []ComboItemRequest `json:"items"        validate:"required,min=1,dive"`
}

type ComboItemRequest struct {
	PresentacionID string  `json:"presentacion_id" validate:"required,uuid"`
	Cantidad       int     `json:"cantidad"        validate:"required,min=1"`
	Notas          *string `json:"notas"           validate:"omitempty,max=255"`
}

// ComboFilter is bound from the query string of GET /v1/combos.
type ComboFilter struct {
	// Todos includes seasonal combos outside their window.
	Todos bool `form:"todos"`
}

type ComboItemResponse struct {
	PresentacionID uuid.UUID `json:"presentacion_id"`
	Descripcion    string    `json:"descripcion"`
	Cantidad       int       `json:"cantidad"`
	Notas          *string   `json:"notas,omitempty"`
}

type ComboResponse struct {
	ID          uuid.UUID           `json:"id"`
	Nombre      string              `json:"nombre"`
	Descripcion *string             `json:"descripcion,omitempty"`
	Precio      decimal.Decimal     `json:"precio"`
	Tipo        string              `json:"tipo"`
	FechaInicio *string             `json:"fecha_inicio,omitempty"`
	FechaFin    *string             `json:"fecha_fin,omitempty"`
	Vigente     bool                `json:"vigente"`
	Items       []ComboItemResponse `json:"items"`
}
