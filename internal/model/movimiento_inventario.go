package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement type codes as stored in movimientos_inventario.tipo.
const (
	MovimientoEntrada = "E"
	MovimientoSalida  = "S"
	MovimientoMerma   = "M"
)

// MovimientoInventario is an append-only stock event on a MateriaPrima.
// StockResultante and CostoResultante snapshot the material after the posting.
type MovimientoInventario struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MateriaPrimaID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Tipo            string           `gorm:"type:char(1);not null;index"`
	Cantidad        decimal.Decimal  `gorm:"type:decimal(12,3);not null"`
	CostoUnitario   *decimal.Decimal `gorm:"type:decimal(12,4)"`
	Motivo          *string
	StockResultante decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CostoResultante decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Fecha           time.Time       `gorm:"not null;index"`

	MateriaPrima *MateriaPrima `gorm:"foreignKey:MateriaPrimaID"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }

var tiposMovimiento = map[string]string{
	"E":       MovimientoEntrada,
	"ENTRADA": MovimientoEntrada,
	"S":       MovimientoSalida,
	"SALIDA":  MovimientoSalida,
	"M":       MovimientoMerma,
	"MERMA":   MovimientoMerma,
}

// ParseTipoMovimiento normalizes a client supplied movement code.
// The second result is false for anything that is not ENTRY, EXIT or WASTE.
func ParseTipoMovimiento(s string) (string, bool) {
	tipo, ok := tiposMovimiento[strings.ToUpper(strings.TrimSpace(s))]
	return tipo, ok
}
