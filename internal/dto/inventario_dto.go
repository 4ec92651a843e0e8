package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Materias primas ───────────────────────────────────────────────────────────

type CrearMateriaPrimaRequest struct {
	Categoria    string          `json:"categoria"     validate:"required,max=100"`
	Nombre       string          `json:"nombre"        validate:"required,min=2,max=150"`
	UnidadMedida string          `json:"unidad_medida" validate:"required,max=30"`
	StockMinimo  decimal.Decimal `json:"stock_minimo"  validate:"min=0"`
	PuntoCritico decimal.Decimal `json:"punto_critico" validate:"min=0"`
	// StockInicial, when positive, is posted as an entry movement at CostoInicial.
	StockInicial *decimal.Decimal `json:"stock_inicial" validate:"omitempty,min=0"`
	CostoInicial *decimal.Decimal `json:"costo_inicial" validate:"omitempty,min=0"`
}

type ActualizarMateriaPrimaRequest struct {
	Categoria    *string          `json:"categoria"     validate:"omitempty,max=100"`
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=2,max=150"`
	UnidadMedida *string          `json:"unidad_medida" validate:"omitempty,max=30"`
	StockMinimo  *decimal.Decimal `json:"stock_minimo"  validate:"omitempty,min=0"`
	PuntoCritico *decimal.Decimal `json:"punto_critico" validate:"omitempty,min=0"`
}

type MateriaPrimaResponse struct {
	ID             uuid.UUID       `json:"id"`
	Categoria      string          `json:"categoria"`
	Nombre         string          `json:"nombre"`
	UnidadMedida   string          `json:"unidad_medida"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	PuntoCritico   decimal.Decimal `json:"punto_critico"`
	CostoPromedio  decimal.Decimal `json:"costo_promedio"`
	EnPuntoCritico bool            `json:"en_punto_critico"`
	BajoMinimo     bool            `json:"bajo_minimo"`
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// MovimientoRequest posts a stock movement. Tipo accepts E/S/M or
// ENTRADA/SALIDA/MERMA; quantity and type are checked by the service.
type MovimientoRequest struct {
	MateriaPrimaID string           `json:"materia_prima_id" validate:"required,uuid"`
	Tipo           string           `json:"tipo"             validate:"required,max=10"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	CostoUnitario  *decimal.Decimal `json:"costo_unitario"   validate:"omitempty,min=0"`
	Motivo         *string          `json:"motivo"           validate:"omitempty,max=255"`
}

// MovimientoFilter is bound from the query string of GET /v1/inventario/movimientos.
type MovimientoFilter struct {
	MateriaPrimaID string `form:"materia_prima_id"`
	Tipo           string `form:"tipo"`
	Desde          string `form:"desde"` // YYYY-MM-DD, inclusive
	Hasta          string `form:"hasta"` // YYYY-MM-DD, inclusive
	Limit          int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type MovimientoResponse struct {
	ID              uuid.UUID        `json:"id"`
	MateriaPrimaID  uuid.UUID        `json:"materia_prima_id"`
	MateriaPrima    string           `json:"materia_prima,omitempty"`
	Tipo            string           `json:"tipo"`
	Cantidad        decimal.Decimal  `json:"cantidad"`
	CostoUnitario   *decimal.Decimal `json:"costo_unitario,omitempty"`
	Motivo          *string          `json:"motivo,omitempty"`
	StockResultante decimal.Decimal  `json:"stock_resultante"`
	CostoResultante decimal.Decimal  `json:"costo_resultante"`
	Fecha           string           `json:"fecha"`
}

type RegistrarMovimientoResponse struct {
	Movimiento   MovimientoResponse   `json:"movimiento"`
	MateriaPrima MateriaPrimaResponse `json:"materia_prima"`
}

type AlertaStockResponse struct {
	MateriaPrimaID uuid.UUID       `json:"materia_prima_id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	UnidadMedida   string          `json:"unidad_medida"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	PuntoCritico   decimal.Decimal `json:"punto_critico"`
	Nivel          string          `json:"nivel"` // CRITICO | BAJO
}
