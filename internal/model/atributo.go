package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Atributo is a customization axis of a category (masa, relleno, picante...).
// Codigo is unique inside its category.
type Atributo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_atributo_categoria_codigo"`
	Nombre      string    `gorm:"not null"`
	Codigo      string    `gorm:"not null;uniqueIndex:idx_atributo_categoria_codigo"`
	EsMultiple  bool      `gorm:"not null;default:false"`
	EsRequerido bool      `gorm:"not null;default:false"`
	Orden       int       `gorm:"not null;default:0"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Opciones []AtributoOpcion `gorm:"foreignKey:AtributoID"`
}

func (Atributo) TableName() string { return "atributos" }

// AtributoOpcion is a selectable value of an Atributo. PrecioExtra is added to
// the unit price of the sale line that selects it.
type AtributoOpcion struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AtributoID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nombre      string          `gorm:"not null"`
	Codigo      string          `gorm:"not null"`
	PrecioExtra decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Orden       int             `gorm:"not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Atributo *Atributo `gorm:"foreignKey:AtributoID"`
}

func (AtributoOpcion) TableName() string { return "atributo_opciones" }
