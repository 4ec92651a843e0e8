package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ComboFijo       = "FIJO"
	ComboEstacional = "ESTACIONAL"
)

// Combo is a flat-priced bundle of presentations. ESTACIONAL combos are only
// sold and listed while the current date falls inside [FechaInicio, FechaFin].
type Combo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tipo        string          `gorm:"type:varchar(20);not null;default:'FIJO'"`
	FechaInicio *time.Time      `gorm:"type:date"`
	FechaFin    *time.Time      `gorm:"type:date"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []ComboItem `gorm:"foreignKey:ComboID;constraint:OnDelete:CASCADE"`
}

func (Combo) TableName() string { return "combos" }

// VigenteEn reports whether the combo can be offered on the calendar day of hoy.
// The window is compared by date only and both ends are inclusive.
func (c *Combo) VigenteEn(hoy time.Time) bool {
	if c.Tipo != ComboEstacional {
		return true
	}
	if c.FechaInicio == nil || c.FechaFin == nil {
		return false
	}
	dia := fechaCivil(hoy)
	return !dia.Before(fechaCivil(*c.FechaInicio)) && !dia.After(fechaCivil(*c.FechaFin))
}

// ComboItem is one presentation inside a combo. It carries no price of its own.
type ComboItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComboID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PresentacionID uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad       int       `gorm:"not null"`
	Notas          *string
	Orden          int `gorm:"not null;default:0"`

	Presentacion *Presentacion `gorm:"foreignKey:PresentacionID"`
}

func (ComboItem) TableName() string { return "combo_items" }

// fechaCivil keeps only the calendar day of t as seen in t's own location.
// Date columns come back as UTC midnight and compare equal to the same local day.
func fechaCivil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
