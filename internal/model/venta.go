package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	VentaCompletada = "COMPLETADA"
	VentaAnulada    = "ANULADA"

	ItemProducto = "PRODUCTO"
	ItemCombo    = "COMBO"
)

// ErrItemVentaInvalido is returned when a line does not reference exactly one
// presentation or one combo.
var ErrItemVentaInvalido = errors.New("el item debe referenciar una presentación o un combo, no ambos")

// Venta is a completed (or later voided) sale. Total = Subtotal - Descuento and
// Subtotal is the sum of the item subtotals.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SucursalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Codigo     string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	Fecha      time.Time       `gorm:"not null;index"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descuento  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado     string          `gorm:"type:varchar(20);not null;default:'COMPLETADA'"`
	CreatedAt  time.Time

	Sucursal *Sucursal   `gorm:"foreignKey:SucursalID"`
	Items    []VentaItem `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

// FormatearCodigoVenta builds the human code V-YYYYMMDD-NNNN for the n-th sale of dia.
func FormatearCodigoVenta(dia time.Time, n int) string {
	return fmt.Sprintf("V-%s-%04d", dia.Format("20060102"), n)
}

// OpcionElegida is the snapshot of an attribute option at sale time.
type OpcionElegida struct {
	OpcionID    uuid.UUID       `json:"opcion_id"`
	Nombre      string          `json:"nombre"`
	PrecioExtra decimal.Decimal `json:"precio_extra"`
}

// Personalizacion maps attribute code to the option chosen for it.
type Personalizacion map[string]OpcionElegida

// ItemRef is what a sale line sold. RefPresentacion and RefCombo are the only
// implementations.
type ItemRef interface {
	tipoItem() string
}

type RefPresentacion struct{ PresentacionID uuid.UUID }

type RefCombo struct{ ComboID uuid.UUID }

func (RefPresentacion) tipoItem() string { return ItemProducto }
func (RefCombo) tipoItem() string { return ItemCombo }

// VentaItem is a line of a Venta. Its reference columns are only written
// through SetRef so exactly one of them is ever set.
type VentaItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Orden           int             `gorm:"not null;default:0"`
	TipoItem        string          `gorm:"type:varchar(10);not null"`
	PresentacionID  *uuid.UUID      `gorm:"type:uuid;index"`
	ComboID         *uuid.UUID      `gorm:"type:uuid;index"`
	Cantidad        int             `gorm:"not null"`
	PrecioUnitario  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioExtras    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Personalizacion Personalizacion `gorm:"type:jsonb;serializer:json"`

	Venta        *Venta        `gorm:"foreignKey:VentaID"`
	Presentacion *Presentacion `gorm:"foreignKey:PresentacionID"`
	Combo        *Combo        `gorm:"foreignKey:ComboID"`
}

func (VentaItem) TableName() string { return "venta_items" }

// SetRef points the line at ref and clears the other reference.
func (i *VentaItem) SetRef(ref ItemRef) {
	i.PresentacionID, i.ComboID = nil, nil
	switch r := ref.(type) {
	case RefPresentacion:
		id := r.PresentacionID
		i.PresentacionID = &id
	case RefCombo:
		id := r.ComboID
		i.ComboID = &id
	}
	i.TipoItem = ref.tipoItem()
}

// Ref returns the line's reference, or nil if the stored columns are inconsistent.
func (i *VentaItem) Ref() ItemRef {
	switch {
	case i.TipoItem == ItemProducto && i.PresentacionID != nil && i.ComboID == nil:
		return RefPresentacion{PresentacionID: *i.PresentacionID}
	case i.TipoItem == ItemCombo && i.ComboID != nil && i.PresentacionID == nil:
		return RefCombo{ComboID: *i.ComboID}
	}
	return nil
}

// Descripcion is the display text of the line.
func (i *VentaItem) Descripcion() string {
	switch {
	case i.Presentacion != nil:
		return i.Presentacion.Descripcion()
	case i.Combo != nil:
		return i.Combo.Nombre
	}
	return ""
}

func (i *VentaItem) BeforeSave(_ *gorm.DB) error {
	if i.Ref() == nil {
		return ErrItemVentaInvalido
	}
	return nil
}

// SecuenciaVenta holds the last sale number issued for a calendar day.
type SecuenciaVenta struct {
	Fecha  time.Time `gorm:"type:date;primaryKey"`
	Ultimo int       `gorm:"not null"`
}

func (SecuenciaVenta) TableName() string { return "secuencias_venta" }
