package dto

import "github.com/google/uuid"

type CrearSucursalRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=100"`
	Direccion *string `json:"direccion" validate:"omitempty,max=255"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
}

type ActualizarSucursalRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Direccion *string `json:"direccion" validate:"omitempty,max=255"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
}

type SucursalResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion *string   `json:"direccion,omitempty"`
	Telefono  *string   `json:"telefono,omitempty"`
	Activo    bool      `json:"activo"`
}
