package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AlertaCritico = "CRITICO"
	AlertaBajo    = "BAJO"
)

// MateriaPrima is a stocked ingredient or supply. StockActual and CostoPromedio
// change only through MovimientoInventario postings.
type MateriaPrima struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Categoria     string          `gorm:"not null;index"`
	Nombre        string          `gorm:"not null"`
	UnidadMedida  string          `gorm:"not null;default:'unidad'"`
	StockActual   decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	StockMinimo   decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	PuntoCritico  decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	CostoPromedio decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Activo        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MateriaPrima) TableName() string { return "materias_primas" }

func (m *MateriaPrima) EnPuntoCritico() bool {
	return m.StockActual.LessThanOrEqual(m.PuntoCritico)
}

func (m *MateriaPrima) BajoMinimo() bool {
	return m.StockActual.LessThanOrEqual(m.StockMinimo)
}

// NivelAlerta returns CRITICO, BAJO, or "" when stock is above the minimum.
func (m *MateriaPrima) NivelAlerta() string {
	switch {
	case !m.BajoMinimo():
		return ""
	case m.EnPuntoCritico():
		return AlertaCritico
	default:
		return AlertaBajo
	}
}
