package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Presentacion is a sellable variant of a product ("Unidad", "Docena", "Jarro 1L").
// Its price is copied into each sale line, so later edits never touch history.
type Presentacion struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nombre     string          `gorm:"not null"`
	Cantidad   int             `gorm:"not null;default:1"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Orden      int             `gorm:"not null;default:0"`
	Activo     bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Presentacion) TableName() string { return "presentaciones" }

// Descripcion is the line label used on sales and tickets: "Producto - Presentacion".
func (p *Presentacion) Descripcion() string {
	if p.Producto == nil {
		return p.Nombre
	}
	return p.Producto.Nombre + " - " + p.Nombre
}
